package training

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Training) error
	FindAll(ctx context.Context) ([]Training, error)
	FindByFacility(ctx context.Context, facility string) ([]Training, error)
	FindByID(ctx context.Context, id string) (*Training, error)
	Update(ctx context.Context, t *Training) error
	Delete(ctx context.Context, id string) error

	UpsertRecord(ctx context.Context, rec *Record) error
	FindRecord(ctx context.Context, trainingID, userID string) (*Record, error)
	FindRecordsByTraining(ctx context.Context, trainingID string) ([]Record, error)
	FindRecordsByUser(ctx context.Context, userID string) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Training) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Training, error) {
	var trainings []Training
	err := r.db.WithContext(ctx).
		Order("scheduled_at DESC").
		Find(&trainings).Error
	return trainings, err
}

func (r *repository) FindByFacility(ctx context.Context, facility string) ([]Training, error) {
	var trainings []Training
	err := r.db.WithContext(ctx).
		Where("facility_name = ?", facility).
		Order("scheduled_at DESC").
		Find(&trainings).Error
	return trainings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Training, error) {
	var t Training
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Training) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Training{}, "id = ?", id).Error
}

func (r *repository) UpsertRecord(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Exec(`
INSERT INTO training_records (id, training_id, user_id, attended, completed_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())
ON CONFLICT (training_id, user_id)
DO UPDATE SET attended = EXCLUDED.attended, completed_at = EXCLUDED.completed_at, updated_at = NOW()
`, rec.ID, rec.TrainingID, rec.UserID, rec.Attended, rec.CompletedAt).Error
}

func (r *repository) FindRecord(ctx context.Context, trainingID, userID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("training_id = ? AND user_id = ?", trainingID, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindRecordsByTraining(ctx context.Context, trainingID string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("training_id = ?", trainingID).
		Find(&records).Error
	return records, err
}

func (r *repository) FindRecordsByUser(ctx context.Context, userID string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	return records, err
}
