package employee

import "time"

// Employee is a skill profile as loaded from the persistence layer.
// Skills maps skill identifier to proficiency level (1-5); a missing
// key means the skill is not held.
type Employee struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	CurrentPosition string         `json:"current_position"`
	Department      string         `json:"department"`
	Skills          map[string]int `json:"skills"`
	CareerGoals     []string       `json:"career_goals"`
	TargetRoles     []string       `json:"target_roles"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (e Employee) SkillLevel(skill string) int {
	return e.Skills[skill]
}

func (e Employee) HasSkill(skill string) bool {
	_, ok := e.Skills[skill]
	return ok
}
