package matching

import (
	"reflect"
	"testing"

	"career-compass/internal/domain/position"
)

func TestTrending_AggregatesDemand(t *testing.T) {
	positions := []position.Position{
		{RequiredSkills: map[string]int{"python": 3}},
		{RequiredSkills: map[string]int{"python": 3}},
		{RequiredSkills: map[string]int{"python": 5}},
	}

	trending := Trending(positions)

	if len(trending) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(trending))
	}
	got := trending[0]
	if got.Skill != "python" || got.DemandCount != 3 {
		t.Fatalf("unexpected entry: %+v", got)
	}
	// (3+3+5)/3 = 3.666... rounds to 3.7
	if got.AverageLevel != 3.7 {
		t.Fatalf("expected average 3.7, got %v", got.AverageLevel)
	}
	if got.Trend != TrendHigh {
		t.Fatalf("expected high trend, got %s", got.Trend)
	}
}

func TestTrending_TrendThresholds(t *testing.T) {
	positions := []position.Position{
		{RequiredSkills: map[string]int{"a": 3, "b": 3, "c": 3}},
		{RequiredSkills: map[string]int{"a": 3, "b": 3}},
		{RequiredSkills: map[string]int{"a": 3}},
	}

	byName := map[string]string{}
	for _, ts := range Trending(positions) {
		byName[ts.Skill] = ts.Trend
	}

	want := map[string]string{"a": TrendHigh, "b": TrendMedium, "c": TrendLow}
	if !reflect.DeepEqual(byName, want) {
		t.Fatalf("unexpected trends: %v", byName)
	}
}

func TestTrending_SortAndLimit(t *testing.T) {
	positions := []position.Position{
		{RequiredSkills: map[string]int{
			"s01": 1, "s02": 1, "s03": 1, "s04": 1, "s05": 1, "s06": 1,
			"s07": 1, "s08": 1, "s09": 1, "s10": 1, "s11": 1, "s12": 1,
		}},
		{RequiredSkills: map[string]int{"s01": 5, "s02": 1}},
	}

	trending := Trending(positions)

	if len(trending) != 10 {
		t.Fatalf("expected top 10, got %d", len(trending))
	}
	// s01 and s02 both appear twice; s01 wins on average level
	if trending[0].Skill != "s01" || trending[1].Skill != "s02" {
		t.Fatalf("unexpected head: %s, %s", trending[0].Skill, trending[1].Skill)
	}
	for i := 1; i < len(trending); i++ {
		prev, cur := trending[i-1], trending[i]
		if cur.DemandCount > prev.DemandCount {
			t.Fatalf("not sorted by demand at %d", i)
		}
		if cur.DemandCount == prev.DemandCount && cur.AverageLevel > prev.AverageLevel {
			t.Fatalf("not sorted by average level at %d", i)
		}
	}
}

func TestTrending_Idempotent(t *testing.T) {
	positions := []position.Position{
		{RequiredSkills: map[string]int{"python": 3, "sql": 4}},
		{RequiredSkills: map[string]int{"python": 5}},
	}
	first := Trending(positions)
	for i := 0; i < 20; i++ {
		if !reflect.DeepEqual(first, Trending(positions)) {
			t.Fatalf("run %d produced a different ranking", i)
		}
	}
}
