package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, log *Log) error
	List(ctx context.Context, limit, offset int) ([]Log, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, log *Log) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Log, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Log{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []Log
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, total, err
}
