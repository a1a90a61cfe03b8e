package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AttendanceRequest) error
	FindByID(ctx context.Context, id string) (*AttendanceRequest, error)
	FindByUser(ctx context.Context, userID string) ([]RequestWithUser, error)
	FindAll(ctx context.Context) ([]RequestWithUser, error)
	FindByFacilities(ctx context.Context, facilities []string) ([]RequestWithUser, error)
	HasDuplicate(ctx context.Context, userID string, day time.Time, requestType string, statuses []string) (bool, error)
	Update(ctx context.Context, a *AttendanceRequest) error
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

func (r *repository) Create(ctx context.Context, a *AttendanceRequest) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AttendanceRequest, error) {
	var a AttendanceRequest
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

const joinedColumns = "attendance_requests.*, users.name AS user_name, " +
	"users.facility AS user_facility, users.department AS user_department"

// FindByUser lists a user's requests newest-first for the history view.
func (r *repository) FindByUser(ctx context.Context, userID string) ([]RequestWithUser, error) {
	var rows []RequestWithUser
	err := r.db.WithContext(ctx).
		Model(&AttendanceRequest{}).
		Select(joinedColumns).
		Joins("JOIN users ON users.id = attendance_requests.user_id").
		Where("attendance_requests.user_id = ?", userID).
		Order("attendance_requests.start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]RequestWithUser, error) {
	var rows []RequestWithUser
	err := r.db.WithContext(ctx).
		Model(&AttendanceRequest{}).
		Select(joinedColumns).
		Joins("JOIN users ON users.id = attendance_requests.user_id").
		Where("users.deleted_at IS NULL").
		Order("attendance_requests.start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByFacilities(ctx context.Context, facilities []string) ([]RequestWithUser, error) {
	var rows []RequestWithUser
	err := r.db.WithContext(ctx).
		Model(&AttendanceRequest{}).
		Select(joinedColumns).
		Joins("JOIN users ON users.id = attendance_requests.user_id").
		Where("users.facility IN ?", facilities).
		Where("users.deleted_at IS NULL").
		Order("attendance_requests.start_date DESC").
		Find(&rows).Error
	return rows, err
}

// HasDuplicate reports whether the user already filed a request of the
// same type starting on the same day in one of the given statuses.
func (r *repository) HasDuplicate(ctx context.Context, userID string, day time.Time, requestType string, statuses []string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceRequest{}).
		Where("user_id = ?", userID).
		Where("request_type = ?", requestType).
		Where("start_date = ?", day).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, a *AttendanceRequest) error {
	return r.db.WithContext(ctx).Save(a).Error
}
