// Package matching holds the pure scoring and gap-analysis engine.
// Every function takes its full working set as parameters and returns
// freshly built values; nothing in here performs I/O or keeps state.
package matching

import "sort"

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillGap is a positive deficit on a single skill. Gap is always > 0;
// skills already met or exceeded are never materialized.
type SkillGap struct {
	SkillName     string `json:"skill_name"`
	CurrentLevel  int    `json:"current_level"`
	RequiredLevel int    `json:"required_level"`
	Gap           int    `json:"gap"`
	Priority      string `json:"priority"`
}

// Gaps compares a current skill map against a required one and returns
// the deficits sorted by gap size, then priority weight, both
// descending. A skill absent from current counts as level 0. Equal
// (gap, weight) pairs keep skill-name order, so the result is
// deterministic for a given input pair.
func Gaps(current, required map[string]int) []SkillGap {
	skills := make([]string, 0, len(required))
	for skill := range required {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	gaps := make([]SkillGap, 0, len(skills))
	for _, skill := range skills {
		requiredLevel := required[skill]
		currentLevel := current[skill]
		gap := requiredLevel - currentLevel
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, SkillGap{
			SkillName:     skill,
			CurrentLevel:  currentLevel,
			RequiredLevel: requiredLevel,
			Gap:           gap,
			Priority:      priorityForGap(gap),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return priorityWeight(gaps[i].Priority) > priorityWeight(gaps[j].Priority)
	})

	return gaps
}

func priorityForGap(gap int) string {
	switch {
	case gap >= 3:
		return PriorityHigh
	case gap == 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func priorityWeight(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}
