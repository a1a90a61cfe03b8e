package security

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=security_repo.go -destination=mock/security_repo_mock.go -package=mock
type Repository interface {
	InsertAttempt(ctx context.Context, attempt *LoginAttempt) error
	CountRecentFailures(ctx context.Context, employeeID string, since time.Time) (int64, error)
	InsertAnomaly(ctx context.Context, anomaly *Anomaly) error
	FindOpenAnomaly(ctx context.Context, anomalyType, employeeID string) (*Anomaly, error)
	ListAnomalies(ctx context.Context, includeAcknowledged bool) ([]Anomaly, error)
	FindAnomalyByID(ctx context.Context, id string) (*Anomaly, error)
	UpdateAnomaly(ctx context.Context, anomaly *Anomaly) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertAttempt(ctx context.Context, attempt *LoginAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *repository) CountRecentFailures(ctx context.Context, employeeID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LoginAttempt{}).
		Where("employee_id = ? AND success = false AND created_at >= ?", employeeID, since).
		Count(&count).Error
	return count, err
}

func (r *repository) InsertAnomaly(ctx context.Context, anomaly *Anomaly) error {
	return r.db.WithContext(ctx).Create(anomaly).Error
}

func (r *repository) FindOpenAnomaly(ctx context.Context, anomalyType, employeeID string) (*Anomaly, error) {
	var anomaly Anomaly
	err := r.db.WithContext(ctx).
		Where("type = ? AND employee_id = ? AND acknowledged = false", anomalyType, employeeID).
		First(&anomaly).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &anomaly, nil
}

func (r *repository) ListAnomalies(ctx context.Context, includeAcknowledged bool) ([]Anomaly, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if !includeAcknowledged {
		q = q.Where("acknowledged = false")
	}
	var anomalies []Anomaly
	err := q.Find(&anomalies).Error
	return anomalies, err
}

func (r *repository) FindAnomalyByID(ctx context.Context, id string) (*Anomaly, error) {
	var anomaly Anomaly
	err := r.db.WithContext(ctx).First(&anomaly, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &anomaly, nil
}

func (r *repository) UpdateAnomaly(ctx context.Context, anomaly *Anomaly) error {
	return r.db.WithContext(ctx).Save(anomaly).Error
}
