package audit

import "time"

type LogResponse struct {
	ID          string  `json:"id"`
	Action      string  `json:"action"`
	Target      string  `json:"target,omitempty"`
	Description string  `json:"description,omitempty"`
	ActorID     *string `json:"actor_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func mapToResponse(entry Log) LogResponse {
	resp := LogResponse{
		ID:          entry.ID.String(),
		Action:      entry.Action,
		Target:      entry.Target,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
	if entry.ActorID != nil {
		id := entry.ActorID.String()
		resp.ActorID = &id
	}
	return resp
}
