package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SourceScheduled = "SCHEDULED"
	SourceAdHoc     = "ADHOC"
)

// Accrual is one grant of paid-leave days with its own lifetime window.
// Consumption requires the request start date to fall inside
// [granted_at, deadline). Rows are never mutated after creation, only
// soft-deleted.
type Accrual struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_accruals_user_granted"`

	DaysGranted decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	GrantedAt   time.Time       `gorm:"not null;index:idx_accruals_user_granted"`
	Deadline    time.Time       `gorm:"type:date;not null"`

	Source      string     `gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	GrantedByID *uuid.UUID `gorm:"type:uuid"`
	Reason      string     `gorm:"type:text"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_accruals_user_granted"`
}

func (Accrual) TableName() string {
	return "paid_leave_accruals"
}
