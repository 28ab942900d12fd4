package learning

import (
	"strconv"
	"strings"
)

// Hour conversions for free-text durations. Source strings are human
// authored, so parse failures fall back to per-unit defaults instead
// of erroring.
const (
	hoursPerMonth = 40
	hoursPerWeek  = 10

	defaultHours      = 10
	defaultMonthHours = 40
	defaultWeekHours  = 20
)

// EstimateDuration sums the hours of every resource and renders the
// total in the coarsest sensible unit: below 40 hours as hours, below
// 160 as whole weeks (10 h each), otherwise whole months (40 h each).
func EstimateDuration(resources []Resource) string {
	totalHours := 0
	for _, res := range resources {
		totalHours += durationHours(res.Duration)
	}

	switch {
	case totalHours < 40:
		return strconv.Itoa(totalHours) + " hours"
	case totalHours < 160:
		return strconv.Itoa(totalHours/hoursPerWeek) + " weeks"
	default:
		return strconv.Itoa(totalHours/hoursPerMonth) + " months"
	}
}

// durationHours reads the leading number before the first recognized
// unit keyword. "6-8 weeks" reads as 6 weeks.
func durationHours(duration string) int {
	d := strings.ToLower(duration)

	switch {
	case strings.Contains(d, "hour"):
		if n, ok := leadingInt(before(d, "hour")); ok {
			return n
		}
		return defaultHours
	case strings.Contains(d, "month"):
		if n, ok := leadingInt(before(d, "month")); ok {
			return n * hoursPerMonth
		}
		return defaultMonthHours
	case strings.Contains(d, "week"):
		if n, ok := leadingInt(before(d, "week")); ok {
			return n * hoursPerWeek
		}
		return defaultWeekHours
	default:
		return defaultHours
	}
}

func before(s, keyword string) string {
	if idx := strings.Index(s, keyword); idx >= 0 {
		return s[:idx]
	}
	return s
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return n, true
}
