package manual

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Manual struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Content     string    `gorm:"type:text;not null"`
	Version     int       `gorm:"not null;default:1"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Manual) TableName() string {
	return "manuals"
}

// Progress records that a user finished reading a manual version.
type Progress struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_user_manual,unique"`
	ManualID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_manual,unique"`
	Version     int       `gorm:"not null"`
	CompletedAt time.Time `gorm:"not null"`
}

func (Progress) TableName() string {
	return "manual_progress"
}
