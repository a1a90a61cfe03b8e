package audit_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/audit"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/events"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/messaging/kafka"
)

type fakeAuditRepository struct {
	insertFn func(ctx context.Context, log *audit.Log) error
	listFn   func(ctx context.Context, limit, offset int) ([]audit.Log, int64, error)
}

func (f *fakeAuditRepository) Insert(ctx context.Context, log *audit.Log) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, log)
	}
	return nil
}

func (f *fakeAuditRepository) List(ctx context.Context, limit, offset int) ([]audit.Log, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

type fakeOutbox struct {
	created   []kafka.OutboxEvent
	createErr error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func TestAuditService_Log(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("stores the entry and mirrors it to the outbox", func(t *testing.T) {
		var stored *audit.Log
		repo := &fakeAuditRepository{
			insertFn: func(ctx context.Context, log *audit.Log) error {
				stored = log
				return nil
			},
		}
		outbox := &fakeOutbox{}
		svc := audit.NewService(repo, outbox)

		svc.Log(ctx, "LEAVE_GRANT", "user:u-1", "granted 5 extra days", actorID.String())

		assert.NotNil(t, stored)
		assert.Equal(t, "LEAVE_GRANT", stored.Action)
		assert.Equal(t, actorID, *stored.ActorID)

		assert.Len(t, outbox.created, 1)
		assert.Equal(t, "audit.logged", outbox.created[0].EventType)
		assert.Equal(t, events.AuditTopic, outbox.created[0].Topic)
	})

	t.Run("unparseable actor id leaves the actor empty", func(t *testing.T) {
		var stored *audit.Log
		repo := &fakeAuditRepository{
			insertFn: func(ctx context.Context, log *audit.Log) error {
				stored = log
				return nil
			},
		}
		svc := audit.NewService(repo, nil)

		svc.Log(ctx, "SERVER_SHUTDOWN", "", "", "system")

		assert.Nil(t, stored.ActorID)
	})

	t.Run("storage failure never panics", func(t *testing.T) {
		repo := &fakeAuditRepository{
			insertFn: func(ctx context.Context, log *audit.Log) error {
				return errors.New("db down")
			},
		}
		outbox := &fakeOutbox{}
		svc := audit.NewService(repo, outbox)

		assert.NotPanics(t, func() {
			svc.Log(ctx, "LEAVE_GRANT", "user:u-1", "", actorID.String())
		})
		assert.Empty(t, outbox.created)
	})
}

func TestAuditService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes limit and offset through", func(t *testing.T) {
		repo := &fakeAuditRepository{
			listFn: func(ctx context.Context, limit, offset int) ([]audit.Log, int64, error) {
				assert.Equal(t, 20, limit)
				assert.Equal(t, 40, offset)
				return []audit.Log{{ID: uuid.New(), Action: "LEAVE_GRANT"}}, 41, nil
			},
		}
		svc := audit.NewService(repo, nil)

		resp, total, err := svc.List(ctx, 3, 20)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(41), total)
	})

	t.Run("out of range paging falls back to defaults", func(t *testing.T) {
		repo := &fakeAuditRepository{
			listFn: func(ctx context.Context, limit, offset int) ([]audit.Log, int64, error) {
				assert.Equal(t, 50, limit)
				assert.Equal(t, 0, offset)
				return nil, 0, nil
			},
		}
		svc := audit.NewService(repo, nil)

		_, _, err := svc.List(ctx, 0, 1000)

		assert.NoError(t, err)
	})
}
