package department

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	departmenterrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/department/errors"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, facility string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	facility := strings.TrimSpace(req.Facility)

	existing, err := s.repo.FindByFacilityAndName(ctx, facility, name)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if existing != nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentExists
	}

	dept := &Department{
		ID:           uuid.New(),
		Name:         name,
		FacilityName: facility,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("department created",
		zap.String("department_id", dept.ID.String()),
		zap.String("facility", facility),
	)
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, facility string) ([]DepartmentResponse, error) {
	var (
		depts []Department
		err   error
	)
	if facility == "" {
		depts, err = s.repo.FindAll(ctx)
	} else {
		depts, err = s.repo.FindByFacility(ctx, facility)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if dept == nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if dept == nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name != dept.Name {
		existing, err := s.repo.FindByFacilityAndName(ctx, dept.FacilityName, name)
		if err != nil {
			return DepartmentResponse{}, err
		}
		if existing != nil {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentExists
		}
	}

	dept.Name = name
	if err := s.repo.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("department updated", zap.String("department_id", id))
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if dept == nil {
		return departmenterrors.ErrDepartmentNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:       dept.ID.String(),
		Name:     dept.Name,
		Facility: dept.FacilityName,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
