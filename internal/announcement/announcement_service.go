package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	announcementerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/announcement/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
)

//go:generate mockgen -source=announcement_service.go -destination=mock/announcement_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	GetPublished(ctx context.Context) ([]AnnouncementResponse, error)
	GetAll(ctx context.Context) ([]AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (AnnouncementResponse, error)
	Update(ctx context.Context, id string, req UpdateAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("announcement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("announcement.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, clock: clk, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateAnnouncementRequest) (AnnouncementResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !IsValidPriority(priority) {
		return AnnouncementResponse{}, announcementerrors.ErrInvalidPriority
	}

	from, to, err := parsePublishWindow(req.PublishFrom, req.PublishTo)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	a := &Announcement{
		ID:          uuid.New(),
		Title:       req.Title,
		Body:        req.Body,
		Priority:    priority,
		PublishFrom: from,
		PublishTo:   to,
		CreatedByID: actor,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement created",
		zap.String("announcement_id", a.ID.String()),
		zap.String("priority", priority),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetPublished(ctx context.Context) ([]AnnouncementResponse, error) {
	announcements, err := s.repo.FindPublished(ctx, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(announcements), nil
}

func (s *service) GetAll(ctx context.Context) ([]AnnouncementResponse, error) {
	announcements, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(announcements), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AnnouncementResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	if a == nil {
		return AnnouncementResponse{}, announcementerrors.ErrAnnouncementNotFound
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAnnouncementRequest) (AnnouncementResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AnnouncementResponse{}, err
	}
	if a == nil {
		return AnnouncementResponse{}, announcementerrors.ErrAnnouncementNotFound
	}

	from, to, err := parsePublishWindow(req.PublishFrom, req.PublishTo)
	if err != nil {
		return AnnouncementResponse{}, err
	}

	a.Title = req.Title
	a.Body = req.Body
	a.Priority = req.Priority
	a.PublishFrom = from
	a.PublishTo = to
	if err := s.repo.Update(ctx, a); err != nil {
		return AnnouncementResponse{}, err
	}

	s.logger.Info("announcement updated", zap.String("announcement_id", id))
	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return announcementerrors.ErrAnnouncementNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("announcement deleted", zap.String("announcement_id", id))
	return nil
}

func parsePublishWindow(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		d, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, apperror.InvalidField("publish_from")
		}
		from = &d
	}
	if toStr != "" {
		d, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, apperror.InvalidField("publish_to")
		}
		to = &d
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, announcementerrors.ErrInvalidPublishWindow
	}
	return from, to, nil
}
