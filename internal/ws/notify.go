package ws

import (
	"encoding/json"
	"time"

	"career-compass/internal/domain/learning"
)

// Notifier translates domain events into broadcast frames. It
// satisfies the usecase layer's Notifier interface.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

type employeeUpdatedEvent struct {
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
}

type planCreatedEvent struct {
	Type          string `json:"type"`
	EmployeeID    string `json:"employee_id"`
	TargetRole    string `json:"target_role"`
	GapCount      int    `json:"gap_count"`
	ResourceCount int    `json:"resource_count"`
	Timestamp     string `json:"timestamp"`
}

func (n *Notifier) EmployeeUpdated(employeeID string) {
	if n == nil || n.hub == nil || employeeID == "" {
		return
	}
	n.send(employeeUpdatedEvent{
		Type:       "employee_updated",
		EmployeeID: employeeID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) PlanCreated(plan learning.Plan) {
	if n == nil || n.hub == nil {
		return
	}
	n.send(planCreatedEvent{
		Type:          "learning_plan_created",
		EmployeeID:    plan.EmployeeID,
		TargetRole:    plan.TargetRole,
		GapCount:      len(plan.SkillGaps),
		ResourceCount: len(plan.Resources),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) send(evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
