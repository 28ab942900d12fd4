package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-compass/internal/domain/employee"
	"career-compass/internal/domain/position"
)

// monthsPerGapLevel is the per-skill development heuristic: a month and
// a half for every missing proficiency level.
const monthsPerGapLevel = 1.5

// monthsPerGapCount is the coarser catalog-wide heuristic used for
// career suggestions, where only the number of gapped skills is known.
const monthsPerGapCount = 2

const suggestionThreshold = 0.5

// CareerPath is the progression report toward a single target position.
type CareerPath struct {
	TargetPosition           position.Position `json:"target_position"`
	CurrentMatchScore        float64           `json:"current_match_score"`
	SkillGaps                []SkillGap        `json:"skill_gaps"`
	EstimatedMonths          int               `json:"estimated_months"`
	EstimatedDevelopmentTime string            `json:"estimated_development_time"`
	Recommendations          []string          `json:"recommendations"`
	NextSteps                []string          `json:"next_steps"`
}

// CareerSuggestion is one row of the catalog-wide progression ranking.
type CareerSuggestion struct {
	Position             string  `json:"position"`
	Department           string  `json:"department"`
	MatchScore           float64 `json:"match_score"`
	SkillGapCount        int     `json:"skill_gaps_count"`
	EstimatedDevelopment string  `json:"estimated_development"`
	Difficulty           string  `json:"difficulty"`
}

// AnalyzeCareerPath projects what it takes for the employee to reach
// the target position: current fitness, the gaps, a development-time
// estimate, and concrete next actions for the top three gaps.
func AnalyzeCareerPath(emp employee.Employee, target position.Position) CareerPath {
	gaps := Gaps(emp.Skills, target.RequiredSkills)
	months := EstimateDevelopmentMonths(gaps)

	return CareerPath{
		TargetPosition:           target,
		CurrentMatchScore:        Score(emp.Skills, target),
		SkillGaps:                gaps,
		EstimatedMonths:          months,
		EstimatedDevelopmentTime: fmt.Sprintf("%d months", months),
		Recommendations:          progressionRecommendations(gaps),
		NextSteps:                nextSteps(gaps),
	}
}

// EstimateDevelopmentMonths is the per-skill heuristic:
// round(sum of gaps * 1.5) months across all gaps.
func EstimateDevelopmentMonths(gaps []SkillGap) int {
	total := 0.0
	for _, gap := range gaps {
		total += float64(gap.Gap) * monthsPerGapLevel
	}
	return int(math.Round(total))
}

// CareerSuggestions ranks the whole catalog against the employee using
// a lower threshold than position matching. Development time here is
// 2 months per gapped skill, a deliberately coarser estimate than the
// per-level one in AnalyzeCareerPath. Equal scores keep catalog order;
// at most topN suggestions are returned.
func CareerSuggestions(emp employee.Employee, positions []position.Position, topN int) []CareerSuggestion {
	suggestions := make([]CareerSuggestion, 0, len(positions))

	for _, pos := range positions {
		score := Score(emp.Skills, pos)
		if score < suggestionThreshold {
			continue
		}

		gaps := Gaps(emp.Skills, pos.RequiredSkills)
		months := len(gaps) * monthsPerGapCount

		suggestions = append(suggestions, CareerSuggestion{
			Position:             pos.Title,
			Department:           pos.Department,
			MatchScore:           math.Round(score*100) / 100,
			SkillGapCount:        len(gaps),
			EstimatedDevelopment: fmt.Sprintf("%d months", months),
			Difficulty:           difficultyForScore(score),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	if topN > 0 && len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

func difficultyForScore(score float64) string {
	switch {
	case score >= 0.8:
		return "easy"
	case score >= 0.6:
		return "medium"
	default:
		return "hard"
	}
}

func progressionRecommendations(gaps []SkillGap) []string {
	var high, medium []string
	for _, gap := range gaps {
		switch gap.Priority {
		case PriorityHigh:
			if len(high) < 3 {
				high = append(high, gap.SkillName)
			}
		case PriorityMedium:
			if len(medium) < 3 {
				medium = append(medium, gap.SkillName)
			}
		}
	}

	recs := make([]string, 0, 2)
	if len(high) > 0 {
		recs = append(recs, "Immediately focus on: "+strings.Join(high, ", "))
	}
	if len(medium) > 0 {
		recs = append(recs, "Next, develop: "+strings.Join(medium, ", "))
	}
	return recs
}

func nextSteps(gaps []SkillGap) []string {
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}

	steps := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		if gap.CurrentLevel == 0 {
			steps = append(steps, fmt.Sprintf("Start learning %s basics", gap.SkillName))
		} else {
			steps = append(steps, fmt.Sprintf("Advance %s from level %d to %d", gap.SkillName, gap.CurrentLevel, gap.RequiredLevel))
		}
	}
	return steps
}
