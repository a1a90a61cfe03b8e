package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/events"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/messaging/kafka"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Log(ctx context.Context, action, target, description, actorID string)
	List(ctx context.Context, page, perPage int) ([]LogResponse, int64, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, outbox: outbox, logger: l}
}

// Log is fire and forget: callers never fail an operation over a
// missing audit row.
func (s *service) Log(ctx context.Context, action, target, description, actorID string) {
	entry := &Log{
		ID:          uuid.New(),
		Action:      action,
		Target:      target,
		Description: description,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		entry.ActorID = &actor
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error("audit write failed",
			zap.String("action", action),
			zap.String("target", target),
			zap.Error(err),
		)
		return
	}

	if s.outbox == nil {
		return
	}
	payload, err := json.Marshal(events.AuditLoggedEvent{
		EventType:   "audit.logged",
		Action:      action,
		Target:      target,
		Description: description,
		ActorID:     actorID,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "system_log",
		AggregateID:   entry.ID.String(),
		EventType:     "audit.logged",
		Topic:         events.AuditTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("audit outbox write failed", zap.String("action", action), zap.Error(err))
	}
}

func (s *service) List(ctx context.Context, page, perPage int) ([]LogResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	logs, total, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]LogResponse, len(logs))
	for i, entry := range logs {
		resp[i] = mapToResponse(entry)
	}
	return resp, total, nil
}
