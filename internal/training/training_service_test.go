package training_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/training"
	trainingerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/training/errors"
)

type fakeTrainingRepository struct {
	createFn                func(ctx context.Context, t *training.Training) error
	findAllFn               func(ctx context.Context) ([]training.Training, error)
	findByFacilityFn        func(ctx context.Context, facility string) ([]training.Training, error)
	findByIDFn              func(ctx context.Context, id string) (*training.Training, error)
	updateFn                func(ctx context.Context, t *training.Training) error
	deleteFn                func(ctx context.Context, id string) error
	upsertRecordFn          func(ctx context.Context, rec *training.Record) error
	findRecordFn            func(ctx context.Context, trainingID, userID string) (*training.Record, error)
	findRecordsByTrainingFn func(ctx context.Context, trainingID string) ([]training.Record, error)
	findRecordsByUserFn     func(ctx context.Context, userID string) ([]training.Record, error)
}

func (f *fakeTrainingRepository) Create(ctx context.Context, t *training.Training) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTrainingRepository) FindAll(ctx context.Context) ([]training.Training, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeTrainingRepository) FindByFacility(ctx context.Context, facility string) ([]training.Training, error) {
	if f.findByFacilityFn != nil {
		return f.findByFacilityFn(ctx, facility)
	}
	return nil, nil
}

func (f *fakeTrainingRepository) FindByID(ctx context.Context, id string) (*training.Training, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeTrainingRepository) Update(ctx context.Context, t *training.Training) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTrainingRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTrainingRepository) UpsertRecord(ctx context.Context, rec *training.Record) error {
	if f.upsertRecordFn != nil {
		return f.upsertRecordFn(ctx, rec)
	}
	return nil
}

func (f *fakeTrainingRepository) FindRecord(ctx context.Context, trainingID, userID string) (*training.Record, error) {
	if f.findRecordFn != nil {
		return f.findRecordFn(ctx, trainingID, userID)
	}
	return nil, nil
}

func (f *fakeTrainingRepository) FindRecordsByTraining(ctx context.Context, trainingID string) ([]training.Record, error) {
	if f.findRecordsByTrainingFn != nil {
		return f.findRecordsByTrainingFn(ctx, trainingID)
	}
	return nil, nil
}

func (f *fakeTrainingRepository) FindRecordsByUser(ctx context.Context, userID string) ([]training.Record, error) {
	if f.findRecordsByUserFn != nil {
		return f.findRecordsByUserFn(ctx, userID)
	}
	return nil, nil
}

func TestTrainingService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		var created *training.Training
		repo := &fakeTrainingRepository{
			createFn: func(ctx context.Context, tr *training.Training) error {
				created = tr
				return nil
			},
		}
		svc := training.NewService(repo, nil)

		resp, err := svc.Create(ctx, actorID.String(), training.CreateTrainingRequest{
			Title:       "Emergency response drill",
			Facility:    "Sakura Clinic",
			ScheduledAt: "2026-03-10T14:00:00Z",
		})

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC), created.ScheduledAt)
		assert.Equal(t, actorID, created.CreatedByID)
		assert.Equal(t, "Sakura Clinic", resp.Facility)
	})

	t.Run("negative malformed schedule", func(t *testing.T) {
		svc := training.NewService(&fakeTrainingRepository{}, nil)

		_, err := svc.Create(ctx, actorID.String(), training.CreateTrainingRequest{
			Title:       "x",
			Facility:    "f",
			ScheduledAt: "March 10th",
		})

		assert.ErrorIs(t, err, trainingerrors.ErrInvalidSchedule)
	})
}

func TestTrainingService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("facility filter narrows the query", func(t *testing.T) {
		repo := &fakeTrainingRepository{
			findByFacilityFn: func(ctx context.Context, facility string) ([]training.Training, error) {
				assert.Equal(t, "Aoba Home Care", facility)
				return []training.Training{{ID: uuid.New(), Title: "Lift assist refresher", FacilityName: facility}}, nil
			},
		}
		svc := training.NewService(repo, nil)

		resp, err := svc.GetAll(ctx, "Aoba Home Care")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Aoba Home Care", resp[0].Facility)
	})
}

func TestTrainingService_Complete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("attended stamps the completion time", func(t *testing.T) {
		tr := &training.Training{ID: uuid.New(), Title: "Drill"}
		var stored *training.Record
		repo := &fakeTrainingRepository{
			findByIDFn: func(ctx context.Context, id string) (*training.Training, error) {
				return tr, nil
			},
			upsertRecordFn: func(ctx context.Context, rec *training.Record) error {
				stored = rec
				return nil
			},
		}
		svc := training.NewService(repo, clock.Fixed(now))

		resp, err := svc.Complete(ctx, tr.ID.String(), userID.String(), training.CompleteTrainingRequest{Attended: true})

		assert.NoError(t, err)
		assert.True(t, stored.Attended)
		assert.Equal(t, now, *stored.CompletedAt)
		assert.NotNil(t, resp.CompletedAt)
	})

	t.Run("absence leaves completion empty", func(t *testing.T) {
		tr := &training.Training{ID: uuid.New()}
		var stored *training.Record
		repo := &fakeTrainingRepository{
			findByIDFn: func(ctx context.Context, id string) (*training.Training, error) {
				return tr, nil
			},
			upsertRecordFn: func(ctx context.Context, rec *training.Record) error {
				stored = rec
				return nil
			},
		}
		svc := training.NewService(repo, clock.Fixed(now))

		resp, err := svc.Complete(ctx, tr.ID.String(), userID.String(), training.CompleteTrainingRequest{Attended: false})

		assert.NoError(t, err)
		assert.False(t, stored.Attended)
		assert.Nil(t, stored.CompletedAt)
		assert.Nil(t, resp.CompletedAt)
	})

	t.Run("negative unknown training", func(t *testing.T) {
		svc := training.NewService(&fakeTrainingRepository{}, nil)

		_, err := svc.Complete(ctx, uuid.New().String(), userID.String(), training.CompleteTrainingRequest{Attended: true})

		assert.ErrorIs(t, err, trainingerrors.ErrTrainingNotFound)
	})
}

func TestTrainingService_RecordsByTraining(t *testing.T) {
	ctx := context.Background()

	t.Run("negative unknown training", func(t *testing.T) {
		svc := training.NewService(&fakeTrainingRepository{}, nil)

		_, err := svc.RecordsByTraining(ctx, uuid.New().String())

		assert.ErrorIs(t, err, trainingerrors.ErrTrainingNotFound)
	})

	t.Run("success", func(t *testing.T) {
		tr := &training.Training{ID: uuid.New()}
		repo := &fakeTrainingRepository{
			findByIDFn: func(ctx context.Context, id string) (*training.Training, error) {
				return tr, nil
			},
			findRecordsByTrainingFn: func(ctx context.Context, trainingID string) ([]training.Record, error) {
				return []training.Record{
					{ID: uuid.New(), TrainingID: tr.ID, UserID: uuid.New(), Attended: true},
					{ID: uuid.New(), TrainingID: tr.ID, UserID: uuid.New(), Attended: false},
				}, nil
			},
		}
		svc := training.NewService(repo, nil)

		resp, err := svc.RecordsByTraining(ctx, tr.ID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
