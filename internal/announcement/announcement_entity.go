package announcement

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
)

type Announcement struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Body        string     `gorm:"type:text;not null"`
	Priority    string     `gorm:"type:varchar(20);not null;default:'NORMAL'"`
	PublishFrom *time.Time `gorm:"type:date"`
	PublishTo   *time.Time `gorm:"type:date"`
	CreatedByID uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}
