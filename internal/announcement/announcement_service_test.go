package announcement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/announcement"
	announcementerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/announcement/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
)

type fakeAnnouncementRepository struct {
	createFn        func(ctx context.Context, a *announcement.Announcement) error
	findAllFn       func(ctx context.Context) ([]announcement.Announcement, error)
	findPublishedFn func(ctx context.Context, at time.Time) ([]announcement.Announcement, error)
	findByIDFn      func(ctx context.Context, id string) (*announcement.Announcement, error)
	updateFn        func(ctx context.Context, a *announcement.Announcement) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeAnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAnnouncementRepository) FindAll(ctx context.Context) ([]announcement.Announcement, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAnnouncementRepository) FindPublished(ctx context.Context, at time.Time) ([]announcement.Announcement, error) {
	if f.findPublishedFn != nil {
		return f.findPublishedFn(ctx, at)
	}
	return nil, nil
}

func (f *fakeAnnouncementRepository) FindByID(ctx context.Context, id string) (*announcement.Announcement, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAnnouncementRepository) Update(ctx context.Context, a *announcement.Announcement) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAnnouncementRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestAnnouncementService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("success defaults priority to normal", func(t *testing.T) {
		var created *announcement.Announcement
		repo := &fakeAnnouncementRepository{
			createFn: func(ctx context.Context, a *announcement.Announcement) error {
				created = a
				return nil
			},
		}
		svc := announcement.NewService(repo, nil)

		resp, err := svc.Create(ctx, actorID.String(), announcement.CreateAnnouncementRequest{
			Title: "Flu shot schedule",
			Body:  "Shots available at the front desk from October.",
		})

		assert.NoError(t, err)
		assert.Equal(t, announcement.PriorityNormal, created.Priority)
		assert.Equal(t, actorID, created.CreatedByID)
		assert.Equal(t, announcement.PriorityNormal, resp.Priority)
	})

	t.Run("success with publish window", func(t *testing.T) {
		var created *announcement.Announcement
		repo := &fakeAnnouncementRepository{
			createFn: func(ctx context.Context, a *announcement.Announcement) error {
				created = a
				return nil
			},
		}
		svc := announcement.NewService(repo, nil)

		_, err := svc.Create(ctx, actorID.String(), announcement.CreateAnnouncementRequest{
			Title:       "Renovation notice",
			Body:        "The east wing closes next month.",
			Priority:    announcement.PriorityHigh,
			PublishFrom: "2026-03-01",
			PublishTo:   "2026-03-31",
		})

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *created.PublishFrom)
		assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *created.PublishTo)
	})

	t.Run("negative inverted publish window", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, nil)

		_, err := svc.Create(ctx, actorID.String(), announcement.CreateAnnouncementRequest{
			Title:       "x",
			Body:        "y",
			PublishFrom: "2026-04-01",
			PublishTo:   "2026-03-01",
		})

		assert.ErrorIs(t, err, announcementerrors.ErrInvalidPublishWindow)
	})

	t.Run("negative malformed publish date", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, nil)

		_, err := svc.Create(ctx, actorID.String(), announcement.CreateAnnouncementRequest{
			Title:       "x",
			Body:        "y",
			PublishFrom: "01-03-2026",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "publish_from")
	})

	t.Run("negative invalid priority", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, nil)

		_, err := svc.Create(ctx, actorID.String(), announcement.CreateAnnouncementRequest{
			Title:    "x",
			Body:     "y",
			Priority: "URGENT",
		})

		assert.ErrorIs(t, err, announcementerrors.ErrInvalidPriority)
	})
}

func TestAnnouncementService_GetPublished(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeAnnouncementRepository{
		findPublishedFn: func(ctx context.Context, at time.Time) ([]announcement.Announcement, error) {
			assert.Equal(t, today, at)
			return []announcement.Announcement{
				{ID: uuid.New(), Title: "Renovation notice", Priority: announcement.PriorityHigh},
			}, nil
		},
	}
	svc := announcement.NewService(repo, clock.Fixed(today.Add(14*time.Hour)))

	resp, err := svc.GetPublished(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Renovation notice", resp[0].Title)
}

func TestAnnouncementService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		existing := &announcement.Announcement{ID: uuid.New(), Title: "Old", Priority: announcement.PriorityLow}
		var saved *announcement.Announcement
		repo := &fakeAnnouncementRepository{
			findByIDFn: func(ctx context.Context, id string) (*announcement.Announcement, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, a *announcement.Announcement) error {
				saved = a
				return nil
			},
		}
		svc := announcement.NewService(repo, nil)

		_, err := svc.Update(ctx, existing.ID.String(), announcement.UpdateAnnouncementRequest{
			Title:    "New title",
			Body:     "New body",
			Priority: announcement.PriorityHigh,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New title", saved.Title)
		assert.Equal(t, announcement.PriorityHigh, saved.Priority)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, nil)

		_, err := svc.Update(ctx, uuid.New().String(), announcement.UpdateAnnouncementRequest{
			Title: "x", Body: "y", Priority: announcement.PriorityNormal,
		})

		assert.ErrorIs(t, err, announcementerrors.ErrAnnouncementNotFound)
	})
}

func TestAnnouncementService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("negative not found", func(t *testing.T) {
		svc := announcement.NewService(&fakeAnnouncementRepository{}, nil)

		err := svc.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, announcementerrors.ErrAnnouncementNotFound)
	})
}
