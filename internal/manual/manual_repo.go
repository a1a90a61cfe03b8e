package manual

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=manual_repo.go -destination=mock/manual_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Manual) error
	FindAll(ctx context.Context) ([]Manual, error)
	FindByID(ctx context.Context, id string) (*Manual, error)
	Update(ctx context.Context, m *Manual) error
	Delete(ctx context.Context, id string) error

	UpsertProgress(ctx context.Context, p *Progress) error
	FindProgressByUser(ctx context.Context, userID string) ([]Progress, error)
	CountProgressByManual(ctx context.Context, manualID string) (int64, error)
	FindProgressByUsers(ctx context.Context, userIDs []string) ([]Progress, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Manual) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Manual, error) {
	var manuals []Manual
	err := r.db.WithContext(ctx).
		Order("category ASC, title ASC").
		Find(&manuals).Error
	return manuals, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Manual, error) {
	var m Manual
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) Update(ctx context.Context, m *Manual) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Manual{}, "id = ?", id).Error
}

func (r *repository) UpsertProgress(ctx context.Context, p *Progress) error {
	return r.db.WithContext(ctx).Exec(`
INSERT INTO manual_progress (id, user_id, manual_id, version, completed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (user_id, manual_id)
DO UPDATE SET version = EXCLUDED.version, completed_at = EXCLUDED.completed_at
`, p.ID, p.UserID, p.ManualID, p.Version, p.CompletedAt).Error
}

func (r *repository) FindProgressByUser(ctx context.Context, userID string) ([]Progress, error) {
	var progress []Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&progress).Error
	return progress, err
}

func (r *repository) CountProgressByManual(ctx context.Context, manualID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Progress{}).
		Where("manual_id = ?", manualID).
		Count(&count).Error
	return count, err
}

func (r *repository) FindProgressByUsers(ctx context.Context, userIDs []string) ([]Progress, error) {
	var progress []Progress
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&progress).Error
	return progress, err
}
