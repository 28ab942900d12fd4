// Package learning holds the learning-plan value objects plus the
// duration and role-inference arithmetic behind plan building.
package learning

import (
	"time"

	"career-compass/internal/domain/matching"
)

// Resource is a single recommended learning item. Duration is free
// text ("6-8 weeks", "40 hours"); EstimateDuration knows how to read it.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Level       string   `json:"level"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating,omitempty"`
	Price       string   `json:"price,omitempty"`
	IsInternal  bool     `json:"is_internal"`
}

// Plan is a time-bounded learning plan toward one target role.
type Plan struct {
	EmployeeID        string              `json:"employee_id"`
	TargetRole        string              `json:"target_role"`
	SkillGaps         []matching.SkillGap `json:"skill_gaps"`
	Resources         []Resource          `json:"recommended_resources"`
	EstimatedDuration string              `json:"estimated_duration"`
	CreatedAt         time.Time           `json:"created_at"`
}

// LevelForCurrent maps an employee's current proficiency to the
// difficulty tag a resource should carry.
func LevelForCurrent(currentLevel int) string {
	switch {
	case currentLevel == 0:
		return "beginner"
	case currentLevel < 3:
		return "intermediate"
	default:
		return "advanced"
	}
}
