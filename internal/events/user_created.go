package events

import "time"

const UserCreatedTopic = "portal.user.lifecycle.v1"

type UserCreatedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	EmployeeID string    `json:"employee_id"`
	Facility   string    `json:"facility"`
	OccurredAt time.Time `json:"occurred_at"`
}
