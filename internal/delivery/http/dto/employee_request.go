package dto

// EmployeeUpsertRequest is the PUT /employees/:employee_id body. The id
// comes from the path, never the body.
type EmployeeUpsertRequest struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	CurrentPosition string         `json:"current_position"`
	Department      string         `json:"department"`
	Skills          map[string]int `json:"skills"`
	CareerGoals     []string       `json:"career_goals"`
	TargetRoles     []string       `json:"target_roles"`
}
