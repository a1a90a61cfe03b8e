package security

import (
	"time"

	"github.com/google/uuid"
)

const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

const AnomalyRepeatedLoginFailure = "REPEATED_LOGIN_FAILURE"

type LoginAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `gorm:"type:varchar(50);not null;index"`
	ClientIP   string    `gorm:"type:varchar(45)"`
	Success    bool      `gorm:"not null"`
	CreatedAt  time.Time
}

func (LoginAttempt) TableName() string {
	return "login_attempts"
}

type Anomaly struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type           string     `gorm:"type:varchar(50);not null"`
	Severity       string     `gorm:"type:varchar(20);not null"`
	EmployeeID     string     `gorm:"type:varchar(50);index"`
	ClientIP       string     `gorm:"type:varchar(45)"`
	Detail         string     `gorm:"type:text"`
	Acknowledged   bool       `gorm:"not null;default:false"`
	AcknowledgedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Anomaly) TableName() string {
	return "security_anomalies"
}
