package matching

import (
	"math"
	"sort"

	"career-compass/internal/domain/position"
)

const (
	TrendHigh   = "high"
	TrendMedium = "medium"
	TrendLow    = "low"
)

const trendingLimit = 10

// TrendingSkill is the aggregated demand for one skill across the
// position catalog.
type TrendingSkill struct {
	Skill        string  `json:"skill"`
	DemandCount  int     `json:"demand_count"`
	AverageLevel float64 `json:"average_level"`
	Trend        string  `json:"trend"`
}

// Trending counts how often each skill appears in required-skill maps
// and averages the demanded level (1 decimal). Sorted by demand count
// then average level, both descending, with ties in skill-name order;
// at most the top 10 are returned.
func Trending(positions []position.Position) []TrendingSkill {
	type demand struct {
		count      int
		totalLevel int
	}

	byName := make(map[string]*demand)
	for _, pos := range positions {
		for skill, level := range pos.RequiredSkills {
			d := byName[skill]
			if d == nil {
				d = &demand{}
				byName[skill] = d
			}
			d.count++
			d.totalLevel += level
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	trending := make([]TrendingSkill, 0, len(names))
	for _, name := range names {
		d := byName[name]
		avg := math.Round(float64(d.totalLevel)/float64(d.count)*10) / 10
		trending = append(trending, TrendingSkill{
			Skill:        name,
			DemandCount:  d.count,
			AverageLevel: avg,
			Trend:        trendForCount(d.count),
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		if trending[i].DemandCount != trending[j].DemandCount {
			return trending[i].DemandCount > trending[j].DemandCount
		}
		return trending[i].AverageLevel > trending[j].AverageLevel
	})

	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	return trending
}

func trendForCount(count int) string {
	switch {
	case count >= 3:
		return TrendHigh
	case count >= 2:
		return TrendMedium
	default:
		return TrendLow
	}
}
