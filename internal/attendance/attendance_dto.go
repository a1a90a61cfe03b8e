package attendance

import (
	"time"
)

type CreateAttendanceRequest struct {
	RequestType string `json:"request_type" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Reason      string `json:"reason"`
}

type RejectAttendanceRequest struct {
	Reason string `json:"reason"`
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name,omitempty"`
	Facility        string  `json:"facility,omitempty"`
	Department      string  `json:"department,omitempty"`
	RequestType     string  `json:"request_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

const dateLayout = "2006-01-02"

func mapToResponse(a AttendanceRequest) AttendanceResponse {
	return AttendanceResponse{
		ID:              a.ID.String(),
		UserID:          a.UserID.String(),
		RequestType:     a.RequestType,
		StartDate:       a.StartDate.Format(dateLayout),
		EndDate:         a.EndDate.Format(dateLayout),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Reason:          a.Reason,
		Status:          a.Status,
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(rows []RequestWithUser) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		r := mapToResponse(row.AttendanceRequest)
		r.UserName = row.UserName
		r.Facility = row.UserFacility
		r.Department = row.UserDepartment
		resp[i] = r
	}
	return resp
}
