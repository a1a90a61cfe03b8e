package training

import "time"

type CreateTrainingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Facility    string `json:"facility" binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

type UpdateTrainingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Facility    string `json:"facility" binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

type CompleteTrainingRequest struct {
	Attended bool `json:"attended"`
}

type TrainingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Facility    string `json:"facility"`
	ScheduledAt string `json:"scheduled_at"`
	CreatedBy   string `json:"created_by"`
}

type RecordResponse struct {
	TrainingID  string  `json:"training_id"`
	UserID      string  `json:"user_id"`
	Attended    bool    `json:"attended"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

func mapToResponse(t Training) TrainingResponse {
	return TrainingResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Facility:    t.FacilityName,
		ScheduledAt: t.ScheduledAt.Format(time.RFC3339),
		CreatedBy:   t.CreatedByID.String(),
	}
}

func mapToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		TrainingID: rec.TrainingID.String(),
		UserID:     rec.UserID.String(),
		Attended:   rec.Attended,
	}
	if rec.CompletedAt != nil {
		d := rec.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &d
	}
	return resp
}
