package facility

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	facilityerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/facility/errors"
)

//go:generate mockgen -source=facility_service.go -destination=mock/facility_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateFacilityRequest) (FacilityResponse, error)
	GetAll(ctx context.Context) ([]FacilityResponse, error)
	GetByID(ctx context.Context, id string) (FacilityResponse, error)
	Update(ctx context.Context, id string, req UpdateFacilityRequest) (FacilityResponse, error)
	Delete(ctx context.Context, id string) error

	GetMappings(ctx context.Context, userID string) (MappingsResponse, error)
	UpdateMappings(ctx context.Context, userID string, req UpdateMappingsRequest) (MappingsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("facility.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("facility.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateFacilityRequest) (FacilityResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return FacilityResponse{}, err
	}
	if existing != nil {
		return FacilityResponse{}, facilityerrors.ErrFacilityNameTaken
	}

	f := &Facility{
		ID:      uuid.New(),
		Name:    name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return FacilityResponse{}, err
	}

	s.logger.Info("facility created", zap.String("facility_id", f.ID.String()), zap.String("name", f.Name))
	return mapToResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context) ([]FacilityResponse, error) {
	facilities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		resp[i] = mapToResponse(f)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FacilityResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FacilityResponse{}, err
	}
	if f == nil {
		return FacilityResponse{}, facilityerrors.ErrFacilityNotFound
	}
	return mapToResponse(*f), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateFacilityRequest) (FacilityResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return FacilityResponse{}, err
	}
	if f == nil {
		return FacilityResponse{}, facilityerrors.ErrFacilityNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name != f.Name {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return FacilityResponse{}, err
		}
		if existing != nil {
			return FacilityResponse{}, facilityerrors.ErrFacilityNameTaken
		}
	}

	f.Name = name
	f.Address = req.Address
	f.Phone = req.Phone
	if err := s.repo.Update(ctx, f); err != nil {
		return FacilityResponse{}, err
	}

	s.logger.Info("facility updated", zap.String("facility_id", id))
	return mapToResponse(*f), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return facilityerrors.ErrFacilityNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("facility deleted", zap.String("facility_id", id))
	return nil
}

func (s *service) GetMappings(ctx context.Context, userID string) (MappingsResponse, error) {
	mappings, err := s.repo.ListMappings(ctx, userID)
	if err != nil {
		return MappingsResponse{}, err
	}
	names := make([]string, len(mappings))
	for i, m := range mappings {
		names[i] = m.FacilityName
	}
	return MappingsResponse{UserID: userID, Facilities: names}, nil
}

func (s *service) UpdateMappings(ctx context.Context, userID string, req UpdateMappingsRequest) (MappingsResponse, error) {
	seen := make(map[string]struct{}, len(req.Facilities))
	names := make([]string, 0, len(req.Facilities))
	for _, raw := range req.Facilities {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		f, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return MappingsResponse{}, err
		}
		if f == nil {
			return MappingsResponse{}, facilityerrors.ErrFacilityNotFound
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if err := s.repo.ReplaceMappings(ctx, userID, names); err != nil {
		return MappingsResponse{}, err
	}

	s.logger.Info("facility mappings updated",
		zap.String("user_id", userID),
		zap.Int("count", len(names)),
	)
	return MappingsResponse{UserID: userID, Facilities: names}, nil
}
