package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	TypeFull   = "FULL"
	TypeHalfAM = "HALF_AM"
	TypeHalfPM = "HALF_PM"
)

// PaidLeave is a leave request. It is created PENDING and transitions
// exactly once to APPROVED or REJECTED.
type PaidLeave struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_paid_leaves_user_status"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_paid_leaves_user_status"`
	EndDate   time.Time `gorm:"type:date;not null"`
	LeaveType string    `gorm:"type:varchar(20);not null;default:'FULL'"`
	Reason    string    `gorm:"type:text"`

	Status          string  `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_paid_leaves_user_status"`
	RejectionReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_paid_leaves_user_status"`
}

func (PaidLeave) TableName() string {
	return "paid_leaves"
}

// Unit is 1.0 for full days, 0.5 for either half-day type.
func Unit(leaveType string) decimal.Decimal {
	if leaveType == TypeHalfAM || leaveType == TypeHalfPM {
		return decimal.NewFromFloat(0.5)
	}
	return decimal.NewFromInt(1)
}

// DaysRequested is (endDate - startDate + 1) calendar days times the
// leave-type unit. Half-day requests over multi-day ranges multiply the
// span by 0.5; the HTTP layer restricts them to single days.
func (p PaidLeave) DaysRequested() decimal.Decimal {
	span := SpanDays(p.StartDate, p.EndDate)
	return decimal.NewFromInt(span).Mul(Unit(p.LeaveType))
}

// SpanDays counts inclusive calendar days between two dates.
func SpanDays(start, end time.Time) int64 {
	return int64(DateOnly(end).Sub(DateOnly(start)).Hours()/24) + 1
}

func IsValidLeaveType(t string) bool {
	return t == TypeFull || t == TypeHalfAM || t == TypeHalfPM
}
