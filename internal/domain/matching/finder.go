package matching

import (
	"fmt"
	"sort"
	"strings"

	"career-compass/internal/domain/employee"
	"career-compass/internal/domain/position"
)

// PositionMatch pairs a position with its fitness against one employee.
// MissingSkills holds the required skills entirely absent from the
// profile, keyed by the level the position asks for.
type PositionMatch struct {
	Position       position.Position `json:"position"`
	MatchScore     float64           `json:"match_score"`
	MissingSkills  map[string]int    `json:"missing_skills"`
	SkillGaps      []SkillGap        `json:"skill_gaps"`
	Recommendation string            `json:"recommendation"`
}

// FindMatches scores the employee against every position, drops those
// below threshold, and returns at most topN matches sorted by score
// descending. Equal scores keep catalog order (stable sort).
func FindMatches(emp employee.Employee, positions []position.Position, threshold float64, topN int) []PositionMatch {
	matches := make([]PositionMatch, 0, len(positions))

	for _, pos := range positions {
		score := Score(emp.Skills, pos)
		if score < threshold {
			continue
		}

		gaps := Gaps(emp.Skills, pos.RequiredSkills)

		missing := make(map[string]int)
		for skill, level := range pos.RequiredSkills {
			if !emp.HasSkill(skill) {
				missing[skill] = level
			}
		}

		matches = append(matches, PositionMatch{
			Position:       pos,
			MatchScore:     score,
			MissingSkills:  missing,
			SkillGaps:      gaps,
			Recommendation: buildRecommendation(score, gaps, missing),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

func buildRecommendation(score float64, gaps []SkillGap, missing map[string]int) string {
	var b strings.Builder

	switch {
	case score >= 0.9:
		b.WriteString("Excellent match! You meet most requirements.")
	case score >= 0.8:
		b.WriteString("Very good match with minor skill gaps.")
	case score >= 0.7:
		b.WriteString("Good match. Some skill development needed.")
	default:
		b.WriteString("Partial match. Significant upskilling required.")
	}

	high := make([]string, 0, 3)
	for _, gap := range gaps {
		if gap.Priority != PriorityHigh {
			continue
		}
		high = append(high, gap.SkillName)
		if len(high) == 3 {
			break
		}
	}
	if len(high) > 0 {
		b.WriteString(" Focus on developing: ")
		b.WriteString(strings.Join(high, ", "))
		b.WriteString(".")
	}

	if len(missing) > 0 {
		if len(missing) <= 2 {
			names := make([]string, 0, len(missing))
			for skill := range missing {
				names = append(names, skill)
			}
			sort.Strings(names)
			b.WriteString(" Consider learning: ")
			b.WriteString(strings.Join(names, ", "))
			b.WriteString(".")
		} else {
			b.WriteString(fmt.Sprintf(" %d new skills needed for this role.", len(missing)))
		}
	}

	return b.String()
}
