package announcement

import "time"

type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH"`
	PublishFrom string `json:"publish_from"`
	PublishTo   string `json:"publish_to"`
}

type UpdateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=LOW NORMAL HIGH"`
	PublishFrom string `json:"publish_from"`
	PublishTo   string `json:"publish_to"`
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Priority    string  `json:"priority"`
	PublishFrom *string `json:"publish_from,omitempty"`
	PublishTo   *string `json:"publish_to,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}

func mapToResponse(a Announcement) AnnouncementResponse {
	resp := AnnouncementResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Body:      a.Body,
		Priority:  a.Priority,
		CreatedBy: a.CreatedByID.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.PublishFrom != nil {
		d := a.PublishFrom.Format("2006-01-02")
		resp.PublishFrom = &d
	}
	if a.PublishTo != nil {
		d := a.PublishTo.Format("2006-01-02")
		resp.PublishTo = &d
	}
	return resp
}

func mapToListResponse(announcements []Announcement) []AnnouncementResponse {
	resp := make([]AnnouncementResponse, len(announcements))
	for i, a := range announcements {
		resp[i] = mapToResponse(a)
	}
	return resp
}
