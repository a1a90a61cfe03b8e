package attendance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMember is this module's view of the users table: identity and
// the fields the scoping rules need.
type StaffMember struct {
	ID         uuid.UUID
	Name       string
	Facility   string
	Department string
	Role       string
}

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators_mock.go -package=mock
type StaffReader interface {
	WithTx(tx *sql.Tx) StaffReader
	FindByID(ctx context.Context, id string) (*StaffMember, error)
}

// FacilityAuthority resolves the facility set an administrator manages.
type FacilityAuthority interface {
	ManagedFacilities(ctx context.Context, userID string) ([]string, error)
}

type staffReader struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewStaffReader(db *gorm.DB) StaffReader {
	return &staffReader{db: db}
}

func (r *staffReader) WithTx(tx *sql.Tx) StaffReader {
	return &staffReader{db: r.db, tx: tx}
}

func (r *staffReader) FindByID(ctx context.Context, id string) (*StaffMember, error) {
	var row StaffMember
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, facility, department, role").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
