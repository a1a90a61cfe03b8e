package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PaidLeave) error
	CreateAll(ctx context.Context, ps []*PaidLeave) error
	FindByID(ctx context.Context, id string) (*PaidLeave, error)
	FindByUser(ctx context.Context, userID string) ([]PaidLeave, error)
	FindApprovedByUser(ctx context.Context, userID string) ([]PaidLeave, error)
	FindAll(ctx context.Context) ([]PaidLeave, error)
	FindByFacilities(ctx context.Context, facilities []string) ([]PaidLeave, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByFacilitiesAndStatus(ctx context.Context, facilities []string, status string) (int64, error)
	HasOverlapping(ctx context.Context, userID string, startDate, endDate time.Time, statuses []string) (bool, error)
	Update(ctx context.Context, p *PaidLeave) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *PaidLeave) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateAll inserts a batch in one statement so a bulk submit persists
// all members or none inside the caller's transaction.
func (r *repository) CreateAll(ctx context.Context, ps []*PaidLeave) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PaidLeave, error) {
	var p PaidLeave
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindByUser lists a user's requests newest-first for the history view.
func (r *repository) FindByUser(ctx context.Context, userID string) ([]PaidLeave, error) {
	var leaves []PaidLeave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

// FindApprovedByUser lists approved requests by ascending start date,
// the order the FIFO simulation replays them in.
func (r *repository) FindApprovedByUser(ctx context.Context, userID string) ([]PaidLeave, error) {
	var leaves []PaidLeave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("status = ?", StatusApproved).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context) ([]PaidLeave, error) {
	var leaves []PaidLeave
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByFacilities(ctx context.Context, facilities []string) ([]PaidLeave, error) {
	var leaves []PaidLeave
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = paid_leaves.user_id").
		Where("users.facility IN ?", facilities).
		Where("users.deleted_at IS NULL").
		Order("paid_leaves.start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaidLeave{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByFacilitiesAndStatus(ctx context.Context, facilities []string, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaidLeave{}).
		Joins("JOIN users ON users.id = paid_leaves.user_id").
		Where("users.facility IN ?", facilities).
		Where("users.deleted_at IS NULL").
		Where("paid_leaves.status = ?", status).
		Count(&count).Error
	return count, err
}

// HasOverlapping reports whether any non-deleted request of the user in
// one of the given statuses intersects [startDate, endDate]. Both ends
// are inclusive: [a,b] and [c,d] overlap iff a <= d and c <= b.
func (r *repository) HasOverlapping(ctx context.Context, userID string, startDate, endDate time.Time, statuses []string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaidLeave{}).
		Where("user_id = ?", userID).
		Where("status IN ?", statuses).
		Where("start_date <= ? AND ? <= end_date", DateOnly(endDate), DateOnly(startDate)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *PaidLeave) error {
	return r.db.WithContext(ctx).Save(p).Error
}
