package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=accrual_repo.go -destination=mock/accrual_repo_mock.go -package=mock
type AccrualRepository interface {
	WithTx(tx *sql.Tx) AccrualRepository
	Insert(ctx context.Context, a *Accrual) error
	ListActive(ctx context.Context, userID string) ([]Accrual, error)
	FindByDeadline(ctx context.Context, userID string, deadline time.Time) (*Accrual, error)
	ListHistory(ctx context.Context, userID string) ([]Accrual, error)
}

type accrualRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewAccrualRepository(db *gorm.DB) AccrualRepository {
	return &accrualRepository{db: db}
}

func (r *accrualRepository) WithTx(tx *sql.Tx) AccrualRepository {
	return &accrualRepository{db: r.db, tx: tx}
}

func (r *accrualRepository) Insert(ctx context.Context, a *Accrual) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListActive returns non-deleted buckets ordered by granted_at ascending,
// the order the FIFO simulation consumes them in.
func (r *accrualRepository) ListActive(ctx context.Context, userID string) ([]Accrual, error) {
	var accruals []Accrual
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&accruals).Error
	return accruals, err
}

// FindByDeadline is the idempotent-materialization probe: scheduled
// buckets of one user are keyed by their deadline.
func (r *accrualRepository) FindByDeadline(ctx context.Context, userID string, deadline time.Time) (*Accrual, error) {
	var a Accrual
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("source = ?", SourceScheduled).
		Where("deadline = ?", DateOnly(deadline)).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *accrualRepository) ListHistory(ctx context.Context, userID string) ([]Accrual, error) {
	var accruals []Accrual
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at DESC").
		Find(&accruals).Error
	return accruals, err
}
