package dto

// LearningPlanRequest is the POST learning-plans body. UseExternal nil
// defers to the server-side default strategy.
type LearningPlanRequest struct {
	TargetRole   string `json:"target_role"`
	UseExternal  *bool  `json:"use_external"`
	MaxResources int    `json:"max_resources"`
}
