package training

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	trainingerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/training/errors"
)

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateTrainingRequest) (TrainingResponse, error)
	GetAll(ctx context.Context, facility string) ([]TrainingResponse, error)
	GetByID(ctx context.Context, id string) (TrainingResponse, error)
	Update(ctx context.Context, id string, req UpdateTrainingRequest) (TrainingResponse, error)
	Delete(ctx context.Context, id string) error

	Complete(ctx context.Context, trainingID, userID string, req CompleteTrainingRequest) (RecordResponse, error)
	RecordsByTraining(ctx context.Context, trainingID string) ([]RecordResponse, error)
	MyRecords(ctx context.Context, userID string) ([]RecordResponse, error)
}

type service struct {
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("training.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("training.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, clock: clk, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateTrainingRequest) (TrainingResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return TrainingResponse{}, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return TrainingResponse{}, trainingerrors.ErrInvalidSchedule
	}

	t := &Training{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		FacilityName: req.Facility,
		ScheduledAt:  scheduledAt,
		CreatedByID:  actor,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return TrainingResponse{}, err
	}

	s.logger.Info("training created",
		zap.String("training_id", t.ID.String()),
		zap.String("facility", t.FacilityName),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, facility string) ([]TrainingResponse, error) {
	var (
		trainings []Training
		err       error
	)
	if facility == "" {
		trainings, err = s.repo.FindAll(ctx)
	} else {
		trainings, err = s.repo.FindByFacility(ctx, facility)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]TrainingResponse, len(trainings))
	for i, t := range trainings {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TrainingResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TrainingResponse{}, err
	}
	if t == nil {
		return TrainingResponse{}, trainingerrors.ErrTrainingNotFound
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTrainingRequest) (TrainingResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TrainingResponse{}, err
	}
	if t == nil {
		return TrainingResponse{}, trainingerrors.ErrTrainingNotFound
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return TrainingResponse{}, trainingerrors.ErrInvalidSchedule
	}

	t.Title = req.Title
	t.Description = req.Description
	t.FacilityName = req.Facility
	t.ScheduledAt = scheduledAt
	if err := s.repo.Update(ctx, t); err != nil {
		return TrainingResponse{}, err
	}

	s.logger.Info("training updated", zap.String("training_id", id))
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return trainingerrors.ErrTrainingNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("training deleted", zap.String("training_id", id))
	return nil
}

func (s *service) Complete(ctx context.Context, trainingID, userID string, req CompleteTrainingRequest) (RecordResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return RecordResponse{}, err
	}

	t, err := s.repo.FindByID(ctx, trainingID)
	if err != nil {
		return RecordResponse{}, err
	}
	if t == nil {
		return RecordResponse{}, trainingerrors.ErrTrainingNotFound
	}

	now := s.clock.Now()
	rec := &Record{
		ID:         uuid.New(),
		TrainingID: t.ID,
		UserID:     uid,
		Attended:   req.Attended,
	}
	if req.Attended {
		rec.CompletedAt = &now
	}
	if err := s.repo.UpsertRecord(ctx, rec); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("training record saved",
		zap.String("training_id", trainingID),
		zap.String("user_id", userID),
		zap.Bool("attended", req.Attended),
	)
	return mapToRecordResponse(*rec), nil
}

func (s *service) RecordsByTraining(ctx context.Context, trainingID string) ([]RecordResponse, error) {
	t, err := s.repo.FindByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, trainingerrors.ErrTrainingNotFound
	}

	records, err := s.repo.FindRecordsByTraining(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	resp := make([]RecordResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToRecordResponse(rec)
	}
	return resp, nil
}

func (s *service) MyRecords(ctx context.Context, userID string) ([]RecordResponse, error) {
	records, err := s.repo.FindRecordsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]RecordResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToRecordResponse(rec)
	}
	return resp, nil
}
