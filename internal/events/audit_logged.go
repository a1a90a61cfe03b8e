package events

import "time"

const AuditTopic = "portal.audit.v1"

type AuditLoggedEvent struct {
	EventType   string    `json:"event_type"`
	Action      string    `json:"action"`
	Target      string    `json:"target"`
	Description string    `json:"description,omitempty"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
