package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypeAbsence        = "ABSENCE"
	TypeLate           = "LATE"
	TypeEarlyDeparture = "EARLY_DEPARTURE"
)

// AttendanceRequest is a correction request for a worked day: an
// absence, a late arrival or an early departure. Created PENDING and
// transitions exactly once to APPROVED or REJECTED. Paid leave is not
// filed here; it goes through the accrual-checked leave flow.
type AttendanceRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_requests_user"`

	RequestType string    `gorm:"type:varchar(20);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	StartTime   *string   `gorm:"type:time"`
	EndTime     *string   `gorm:"type:time"`
	Reason      string    `gorm:"type:text"`

	Status          string  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	RejectionReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AttendanceRequest) TableName() string {
	return "attendance_requests"
}

// RequestWithUser is a list row joined with the owning user for the
// administrative views.
type RequestWithUser struct {
	AttendanceRequest `gorm:"embedded"`

	UserName       string
	UserFacility   string
	UserDepartment string
}

func IsValidRequestType(t string) bool {
	return t == TypeAbsence || t == TypeLate || t == TypeEarlyDeparture
}

// RequiresStartTime reports whether the type describes a partial day
// and therefore needs a clock time.
func RequiresStartTime(t string) bool {
	return t == TypeLate || t == TypeEarlyDeparture
}
