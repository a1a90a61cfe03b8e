package facility

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=facility_repo.go -destination=mock/facility_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *Facility) error
	FindAll(ctx context.Context) ([]Facility, error)
	FindByID(ctx context.Context, id string) (*Facility, error)
	FindByName(ctx context.Context, name string) (*Facility, error)
	Update(ctx context.Context, f *Facility) error
	Delete(ctx context.Context, id string) error

	ListMappings(ctx context.Context, userID string) ([]UserFacilityMapping, error)
	ReplaceMappings(ctx context.Context, userID string, facilityNames []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Facility) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Facility, error) {
	var facilities []Facility
	err := r.db.WithContext(ctx).Order("name ASC").Find(&facilities).Error
	return facilities, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Facility, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *repository) FindByName(ctx context.Context, name string) (*Facility, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *repository) findOne(ctx context.Context, query string, args ...any) (*Facility, error) {
	var f Facility
	err := r.db.WithContext(ctx).Where(query, args...).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) Update(ctx context.Context, f *Facility) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Facility{}, "id = ?", id).Error
}

func (r *repository) ListMappings(ctx context.Context, userID string) ([]UserFacilityMapping, error) {
	var mappings []UserFacilityMapping
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("facility_name ASC").
		Find(&mappings).Error
	return mappings, err
}

func (r *repository) ReplaceMappings(ctx context.Context, userID string, facilityNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_facility_mappings WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		for _, name := range facilityNames {
			if err := tx.Exec(
				"INSERT INTO user_facility_mappings (user_id, facility_name) VALUES (?, ?)",
				userID, name,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
