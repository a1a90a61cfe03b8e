package manual

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	manualerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/manual/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

// UserLister is the slice of the user repository the completion rate
// needs.
type UserLister interface {
	FindAll(ctx context.Context) ([]user.User, error)
}

//go:generate mockgen -source=manual_service.go -destination=mock/manual_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateManualRequest) (ManualResponse, error)
	GetAll(ctx context.Context) ([]ManualResponse, error)
	GetByID(ctx context.Context, id string) (ManualResponse, error)
	Update(ctx context.Context, id string, req UpdateManualRequest) (ManualResponse, error)
	Delete(ctx context.Context, id string) error

	Complete(ctx context.Context, userID, manualID string, req CompleteRequest) (ProgressResponse, error)
	MyProgress(ctx context.Context, userID string) ([]ProgressResponse, error)
	CompletionRate(ctx context.Context, manualID string) (CompletionRateResponse, error)
}

type service struct {
	repo   Repository
	users  UserLister
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, users UserLister, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("manual.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manual.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, users: users, clock: clk, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateManualRequest) (ManualResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return ManualResponse{}, err
	}

	m := &Manual{
		ID:          uuid.New(),
		Title:       req.Title,
		Category:    req.Category,
		Content:     req.Content,
		Version:     1,
		CreatedByID: actor,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return ManualResponse{}, err
	}

	s.logger.Info("manual created", zap.String("manual_id", m.ID.String()), zap.String("title", m.Title))
	return mapToResponse(*m), nil
}

func (s *service) GetAll(ctx context.Context) ([]ManualResponse, error) {
	manuals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ManualResponse, len(manuals))
	for i, m := range manuals {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ManualResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ManualResponse{}, err
	}
	if m == nil {
		return ManualResponse{}, manualerrors.ErrManualNotFound
	}
	return mapToResponse(*m), nil
}

// Update bumps the manual version so existing completions become stale.
func (s *service) Update(ctx context.Context, id string, req UpdateManualRequest) (ManualResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ManualResponse{}, err
	}
	if m == nil {
		return ManualResponse{}, manualerrors.ErrManualNotFound
	}

	m.Title = req.Title
	m.Category = req.Category
	m.Content = req.Content
	m.Version++
	if err := s.repo.Update(ctx, m); err != nil {
		return ManualResponse{}, err
	}

	s.logger.Info("manual updated",
		zap.String("manual_id", id),
		zap.Int("version", m.Version),
	)
	return mapToResponse(*m), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return manualerrors.ErrManualNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("manual deleted", zap.String("manual_id", id))
	return nil
}

func (s *service) Complete(ctx context.Context, userID, manualID string, req CompleteRequest) (ProgressResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ProgressResponse{}, err
	}

	m, err := s.repo.FindByID(ctx, manualID)
	if err != nil {
		return ProgressResponse{}, err
	}
	if m == nil {
		return ProgressResponse{}, manualerrors.ErrManualNotFound
	}
	if req.Version != m.Version {
		return ProgressResponse{}, manualerrors.ErrStaleVersion
	}

	p := &Progress{
		ID:          uuid.New(),
		UserID:      uid,
		ManualID:    m.ID,
		Version:     m.Version,
		CompletedAt: s.clock.Now(),
	}
	if err := s.repo.UpsertProgress(ctx, p); err != nil {
		return ProgressResponse{}, err
	}

	s.logger.Info("manual completed",
		zap.String("user_id", userID),
		zap.String("manual_id", manualID),
		zap.Int("version", m.Version),
	)
	return mapToProgressResponse(*p), nil
}

func (s *service) MyProgress(ctx context.Context, userID string) ([]ProgressResponse, error) {
	progress, err := s.repo.FindProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]ProgressResponse, len(progress))
	for i, p := range progress {
		resp[i] = mapToProgressResponse(p)
	}
	return resp, nil
}

func (s *service) CompletionRate(ctx context.Context, manualID string) (CompletionRateResponse, error) {
	m, err := s.repo.FindByID(ctx, manualID)
	if err != nil {
		return CompletionRateResponse{}, err
	}
	if m == nil {
		return CompletionRateResponse{}, manualerrors.ErrManualNotFound
	}

	completed, err := s.repo.CountProgressByManual(ctx, manualID)
	if err != nil {
		return CompletionRateResponse{}, err
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return CompletionRateResponse{}, err
	}
	total := int64(len(users))

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total)
	}
	return CompletionRateResponse{
		ManualID:       manualID,
		Completed:      completed,
		TotalUsers:     total,
		CompletionRate: rate,
	}, nil
}
