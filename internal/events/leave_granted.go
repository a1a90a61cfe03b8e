package events

import "time"

const LeaveGrantedTopic = "portal.leave.lifecycle.v1"

// LeaveGrantedEvent is published when an administrator grants paid leave
// days outside the statutory schedule.
type LeaveGrantedEvent struct {
	EventType   string    `json:"event_type"`
	UserID      string    `json:"user_id"`
	GrantedByID string    `json:"granted_by_id"`
	Days        float64   `json:"days"`
	Deadline    string    `json:"deadline"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
