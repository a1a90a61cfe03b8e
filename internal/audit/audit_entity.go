package audit

import (
	"time"

	"github.com/google/uuid"
)

type Log struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action      string     `gorm:"type:varchar(50);not null;index"`
	Target      string     `gorm:"type:varchar(100)"`
	Description string     `gorm:"type:text"`
	ActorID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

func (Log) TableName() string {
	return "system_logs"
}
