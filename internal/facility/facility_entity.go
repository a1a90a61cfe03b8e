package facility

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Facility struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Address   string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Facility) TableName() string {
	return "facilities"
}

// UserFacilityMapping gives an administrator authority over a facility
// other than their own.
type UserFacilityMapping struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_facility,unique"`
	FacilityName string    `gorm:"type:varchar(100);not null;index:idx_user_facility,unique"`
	CreatedAt    time.Time
}

func (UserFacilityMapping) TableName() string {
	return "user_facility_mappings"
}
