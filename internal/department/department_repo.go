package department

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByFacility(ctx context.Context, facility string) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByFacilityAndName(ctx context.Context, facility, name string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Order("facility_name ASC, name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByFacility(ctx context.Context, facility string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Where("facility_name = ?", facility).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *repository) FindByFacilityAndName(ctx context.Context, facility, name string) (*Department, error) {
	return r.findOne(ctx, "facility_name = ? AND name = ?", facility, name)
}

func (r *repository) findOne(ctx context.Context, query string, args ...any) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).Where(query, args...).First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}
