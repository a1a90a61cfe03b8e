package training

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Training struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	FacilityName string    `gorm:"type:varchar(100);not null;index"`
	ScheduledAt  time.Time `gorm:"not null"`
	CreatedByID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Training) TableName() string {
	return "trainings"
}

type Record struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrainingID  uuid.UUID `gorm:"type:uuid;not null;index:idx_training_user,unique"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_training_user,unique"`
	Attended    bool      `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Record) TableName() string {
	return "training_records"
}
