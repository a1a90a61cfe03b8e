package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleDeveloper = "DEVELOPER"
)

// User is a portal account. The leave engine co-owns this row: it alone
// writes paid_leave_days and reads initial_adjustment_days.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	EmployeeID string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Password   string `gorm:"type:varchar(100);not null"`
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(100)"`
	Facility   string `gorm:"type:varchar(100);not null;index"`
	Department string `gorm:"type:varchar(100);not null"`
	Role       string `gorm:"type:varchar(20);not null;default:'USER'"`

	HiredAt               *time.Time      `gorm:"type:date"`
	InitialAdjustmentDays decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	PaidLeaveDays         decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	MustChangePassword bool    `gorm:"not null;default:true"`
	InvitationToken    *string `gorm:"type:varchar(64)"`
	ResetToken         *string `gorm:"type:varchar(64)"`
	ResetTokenExpiry   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleDeveloper
}
