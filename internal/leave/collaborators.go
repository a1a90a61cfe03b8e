package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the engine's view of the users table: identity plus the
// two engine-owned fields, the leave cache and the opening adjustment.
type Employee struct {
	ID                    uuid.UUID
	EmployeeCode          string
	Name                  string
	Facility              string
	Department            string
	Role                  string
	HiredAt               *time.Time
	InitialAdjustmentDays decimal.Decimal
	LeaveDaysCache        decimal.Decimal
}

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators_mock.go -package=mock
type EmployeeReader interface {
	WithTx(tx *sql.Tx) EmployeeReader
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindByFacilityIn(ctx context.Context, facilities []string) ([]Employee, error)
	UpdateLeaveCache(ctx context.Context, id string, balance decimal.Decimal) error
}

// FacilityAuthority resolves the facility set an administrator manages.
type FacilityAuthority interface {
	ManagedFacilities(ctx context.Context, userID string) ([]string, error)
}

// AuditLogger records administrative actions. Fire and forget: the
// engine never fails an operation over an audit write.
type AuditLogger interface {
	Log(ctx context.Context, action, target, description, actorID string)
}

type employeeRow struct {
	ID                    uuid.UUID
	EmployeeID            string
	Name                  string
	Facility              string
	Department            string
	Role                  string
	HiredAt               *time.Time
	InitialAdjustmentDays decimal.Decimal
	PaidLeaveDays         decimal.Decimal
}

type employeeReader struct {
	db *gorm.DB
	tx *sql.Tx
}

// NewEmployeeReader reads employees off the shared users table. The
// engine owns only paid_leave_days and initial_adjustment_days there.
func NewEmployeeReader(db *gorm.DB) EmployeeReader {
	return &employeeReader{db: db}
}

func (r *employeeReader) WithTx(tx *sql.Tx) EmployeeReader {
	return &employeeReader{db: r.db, tx: tx}
}

const employeeColumns = "id, employee_id, name, facility, department, role, hired_at, initial_adjustment_days, paid_leave_days"

func (r *employeeReader) FindByID(ctx context.Context, id string) (*Employee, error) {
	var row employeeRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(employeeColumns).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToEmployee(row), nil
}

func (r *employeeReader) FindAllActive(ctx context.Context) ([]Employee, error) {
	var rows []employeeRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(employeeColumns).
		Where("deleted_at IS NULL").
		Order("employee_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToEmployees(rows), nil
}

func (r *employeeReader) FindByFacilityIn(ctx context.Context, facilities []string) ([]Employee, error) {
	var rows []employeeRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(employeeColumns).
		Where("facility IN ?", facilities).
		Where("deleted_at IS NULL").
		Order("employee_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rowsToEmployees(rows), nil
}

func (r *employeeReader) UpdateLeaveCache(ctx context.Context, id string, balance decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", id).
		Update("paid_leave_days", balance).Error
}

func rowToEmployee(row employeeRow) *Employee {
	return &Employee{
		ID:                    row.ID,
		EmployeeCode:          row.EmployeeID,
		Name:                  row.Name,
		Facility:              row.Facility,
		Department:            row.Department,
		Role:                  row.Role,
		HiredAt:               row.HiredAt,
		InitialAdjustmentDays: row.InitialAdjustmentDays,
		LeaveDaysCache:        row.PaidLeaveDays,
	}
}

func rowsToEmployees(rows []employeeRow) []Employee {
	out := make([]Employee, len(rows))
	for i, row := range rows {
		out[i] = *rowToEmployee(row)
	}
	return out
}
