package learning

import "testing"

func TestDurationHours_Units(t *testing.T) {
	cases := []struct {
		duration string
		want     int
	}{
		{"40 hours", 40},
		{"3 months", 120},
		{"6-8 weeks", 60}, // leading digit group before the unit
		{"2 weeks", 20},
		{"Variable", 10},
		{"", 10},
		{"some hours", 10},    // hour keyword, no number
		{"a few months", 40},  // month keyword, no number
		{"several weeks", 20}, // week keyword, no number
		{"12 Hours", 12},
	}
	for _, tc := range cases {
		if got := durationHours(tc.duration); got != tc.want {
			t.Fatalf("%q: expected %d hours, got %d", tc.duration, tc.want, got)
		}
	}
}

func TestEstimateDuration_Buckets(t *testing.T) {
	hours := func(d string) Resource { return Resource{Duration: d} }

	cases := []struct {
		name      string
		resources []Resource
		want      string
	}{
		{"empty", nil, "0 hours"},
		{"hours", []Resource{hours("20 hours"), hours("10 hours")}, "30 hours"},
		{"weeks", []Resource{hours("4 weeks"), hours("20 hours")}, "6 weeks"},
		{"months", []Resource{hours("6-8 weeks"), hours("3 months")}, "4 months"}, // 60+120=180 -> 180/40
		{"week boundary", []Resource{hours("40 hours")}, "4 weeks"},
		{"month boundary", []Resource{hours("4 months")}, "4 months"},
	}
	for _, tc := range cases {
		if got := EstimateDuration(tc.resources); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
