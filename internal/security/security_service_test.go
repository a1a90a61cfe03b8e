package security_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/security"
	securityerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/security/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
)

type fakeSecurityRepository struct {
	insertAttemptFn       func(ctx context.Context, attempt *security.LoginAttempt) error
	countRecentFailuresFn func(ctx context.Context, employeeID string, since time.Time) (int64, error)
	insertAnomalyFn       func(ctx context.Context, anomaly *security.Anomaly) error
	findOpenAnomalyFn     func(ctx context.Context, anomalyType, employeeID string) (*security.Anomaly, error)
	listAnomaliesFn       func(ctx context.Context, includeAcknowledged bool) ([]security.Anomaly, error)
	findAnomalyByIDFn     func(ctx context.Context, id string) (*security.Anomaly, error)
	updateAnomalyFn       func(ctx context.Context, anomaly *security.Anomaly) error
}

func (f *fakeSecurityRepository) InsertAttempt(ctx context.Context, attempt *security.LoginAttempt) error {
	if f.insertAttemptFn != nil {
		return f.insertAttemptFn(ctx, attempt)
	}
	return nil
}

func (f *fakeSecurityRepository) CountRecentFailures(ctx context.Context, employeeID string, since time.Time) (int64, error) {
	if f.countRecentFailuresFn != nil {
		return f.countRecentFailuresFn(ctx, employeeID, since)
	}
	return 0, nil
}

func (f *fakeSecurityRepository) InsertAnomaly(ctx context.Context, anomaly *security.Anomaly) error {
	if f.insertAnomalyFn != nil {
		return f.insertAnomalyFn(ctx, anomaly)
	}
	return nil
}

func (f *fakeSecurityRepository) FindOpenAnomaly(ctx context.Context, anomalyType, employeeID string) (*security.Anomaly, error) {
	if f.findOpenAnomalyFn != nil {
		return f.findOpenAnomalyFn(ctx, anomalyType, employeeID)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) ListAnomalies(ctx context.Context, includeAcknowledged bool) ([]security.Anomaly, error) {
	if f.listAnomaliesFn != nil {
		return f.listAnomaliesFn(ctx, includeAcknowledged)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) FindAnomalyByID(ctx context.Context, id string) (*security.Anomaly, error) {
	if f.findAnomalyByIDFn != nil {
		return f.findAnomalyByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) UpdateAnomaly(ctx context.Context, anomaly *security.Anomaly) error {
	if f.updateAnomalyFn != nil {
		return f.updateAnomalyFn(ctx, anomaly)
	}
	return nil
}

func TestSecurityService_RecordAttempt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success attempt only stores the row", func(t *testing.T) {
		var stored *security.LoginAttempt
		counted := false
		repo := &fakeSecurityRepository{
			insertAttemptFn: func(ctx context.Context, attempt *security.LoginAttempt) error {
				stored = attempt
				return nil
			},
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				counted = true
				return 0, nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", true)

		assert.NotNil(t, stored)
		assert.True(t, stored.Success)
		assert.False(t, counted)
	})

	t.Run("failures below the threshold raise nothing", func(t *testing.T) {
		raised := false
		repo := &fakeSecurityRepository{
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				assert.Equal(t, now.Add(-15*time.Minute), since)
				return 4, nil
			},
			insertAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				raised = true
				return nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)

		assert.False(t, raised)
	})

	t.Run("fifth failure in the window raises a medium anomaly", func(t *testing.T) {
		var raised *security.Anomaly
		repo := &fakeSecurityRepository{
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				return 5, nil
			},
			insertAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				raised = anomaly
				return nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)

		assert.NotNil(t, raised)
		assert.Equal(t, security.AnomalyRepeatedLoginFailure, raised.Type)
		assert.Equal(t, security.SeverityMedium, raised.Severity)
		assert.Equal(t, "N-1024", raised.EmployeeID)
		assert.Contains(t, raised.Detail, "5 failed logins")
	})

	t.Run("tenth failure raises high", func(t *testing.T) {
		var raised *security.Anomaly
		repo := &fakeSecurityRepository{
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				return 10, nil
			},
			insertAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				raised = anomaly
				return nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)

		assert.NotNil(t, raised)
		assert.Equal(t, security.SeverityHigh, raised.Severity)
	})

	t.Run("open medium anomaly escalates instead of duplicating", func(t *testing.T) {
		open := &security.Anomaly{
			ID:       uuid.New(),
			Type:     security.AnomalyRepeatedLoginFailure,
			Severity: security.SeverityMedium,
		}
		inserted := false
		var updated *security.Anomaly
		repo := &fakeSecurityRepository{
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				return 11, nil
			},
			findOpenAnomalyFn: func(ctx context.Context, anomalyType, employeeID string) (*security.Anomaly, error) {
				return open, nil
			},
			insertAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				inserted = true
				return nil
			},
			updateAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				updated = anomaly
				return nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)

		assert.False(t, inserted)
		assert.NotNil(t, updated)
		assert.Equal(t, security.SeverityHigh, updated.Severity)
	})

	t.Run("open high anomaly stays untouched", func(t *testing.T) {
		open := &security.Anomaly{
			ID:       uuid.New(),
			Type:     security.AnomalyRepeatedLoginFailure,
			Severity: security.SeverityHigh,
		}
		touched := false
		repo := &fakeSecurityRepository{
			countRecentFailuresFn: func(ctx context.Context, employeeID string, since time.Time) (int64, error) {
				return 12, nil
			},
			findOpenAnomalyFn: func(ctx context.Context, anomalyType, employeeID string) (*security.Anomaly, error) {
				return open, nil
			},
			updateAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				touched = true
				return nil
			},
			insertAnomalyFn: func(ctx context.Context, anomaly *security.Anomaly) error {
				touched = true
				return nil
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)

		assert.False(t, touched)
	})

	t.Run("storage failure never panics the login path", func(t *testing.T) {
		repo := &fakeSecurityRepository{
			insertAttemptFn: func(ctx context.Context, attempt *security.LoginAttempt) error {
				return errors.New("db down")
			},
		}
		svc := security.NewService(repo, clock.Fixed(now))

		assert.NotPanics(t, func() {
			svc.RecordAttempt(ctx, "N-1024", "10.0.0.5", false)
		})
	})
}

func TestSecurityService_Acknowledge(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		anomaly := &security.Anomaly{ID: uuid.New(), Severity: security.SeverityMedium}
		var updated *security.Anomaly
		repo := &fakeSecurityRepository{
			findAnomalyByIDFn: func(ctx context.Context, id string) (*security.Anomaly, error) {
				return anomaly, nil
			},
			updateAnomalyFn: func(ctx context.Context, a *security.Anomaly) error {
				updated = a
				return nil
			},
		}
		svc := security.NewService(repo, nil)

		err := svc.Acknowledge(ctx, anomaly.ID.String(), actorID.String())

		assert.NoError(t, err)
		assert.True(t, updated.Acknowledged)
		assert.Equal(t, actorID, *updated.AcknowledgedBy)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := security.NewService(&fakeSecurityRepository{}, nil)

		err := svc.Acknowledge(ctx, uuid.New().String(), actorID.String())

		assert.ErrorIs(t, err, securityerrors.ErrAnomalyNotFound)
	})

	t.Run("negative already acknowledged", func(t *testing.T) {
		repo := &fakeSecurityRepository{
			findAnomalyByIDFn: func(ctx context.Context, id string) (*security.Anomaly, error) {
				return &security.Anomaly{ID: uuid.New(), Acknowledged: true}, nil
			},
		}
		svc := security.NewService(repo, nil)

		err := svc.Acknowledge(ctx, uuid.New().String(), actorID.String())

		assert.ErrorIs(t, err, securityerrors.ErrAlreadyAcknowledged)
	})
}

func TestSecurityService_ListAnomalies(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSecurityRepository{
		listAnomaliesFn: func(ctx context.Context, includeAcknowledged bool) ([]security.Anomaly, error) {
			assert.False(t, includeAcknowledged)
			ack := uuid.New()
			return []security.Anomaly{
				{ID: uuid.New(), Type: security.AnomalyRepeatedLoginFailure, Severity: security.SeverityMedium, AcknowledgedBy: &ack},
			}, nil
		},
	}
	svc := security.NewService(repo, nil)

	resp, err := svc.ListAnomalies(ctx, false)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, security.SeverityMedium, resp[0].Severity)
	assert.NotNil(t, resp[0].AcknowledgedBy)
}
