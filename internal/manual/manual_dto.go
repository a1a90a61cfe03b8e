package manual

import "time"

type CreateManualRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
}

type UpdateManualRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content" binding:"required"`
}

type CompleteRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

type ManualResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Content   string `json:"content"`
	Version   int    `json:"version"`
	CreatedBy string `json:"created_by"`
	UpdatedAt string `json:"updated_at"`
}

type ProgressResponse struct {
	ManualID    string `json:"manual_id"`
	Version     int    `json:"version"`
	CompletedAt string `json:"completed_at"`
}

type CompletionRateResponse struct {
	ManualID       string  `json:"manual_id"`
	Completed      int64   `json:"completed"`
	TotalUsers     int64   `json:"total_users"`
	CompletionRate float64 `json:"completion_rate"`
}

func mapToResponse(m Manual) ManualResponse {
	return ManualResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Category:  m.Category,
		Content:   m.Content,
		Version:   m.Version,
		CreatedBy: m.CreatedByID.String(),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToProgressResponse(p Progress) ProgressResponse {
	return ProgressResponse{
		ManualID:    p.ManualID.String(),
		Version:     p.Version,
		CompletedAt: p.CompletedAt.Format(time.RFC3339),
	}
}
