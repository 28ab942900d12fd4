package usecase

import "career-compass/internal/domain/learning"

// Notifier pushes domain events to connected clients. The websocket hub
// implements it; passing nil disables notifications.
type Notifier interface {
	EmployeeUpdated(employeeID string)
	PlanCreated(plan learning.Plan)
}
