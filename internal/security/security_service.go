package security

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	securityerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/security/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
)

const (
	failureWindow       = 15 * time.Minute
	failureThresholdMed = 5
	failureThresholdHi  = 10
)

//go:generate mockgen -source=security_service.go -destination=mock/security_service_mock.go -package=mock
type Service interface {
	RecordAttempt(ctx context.Context, employeeID, clientIP string, success bool)
	ListAnomalies(ctx context.Context, includeAcknowledged bool) ([]AnomalyResponse, error)
	Acknowledge(ctx context.Context, anomalyID, actorID string) error
}

type service struct {
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("security.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("security.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, clock: clk, logger: l}
}

// RecordAttempt is fire and forget: a storage failure here must never
// break the login path.
func (s *service) RecordAttempt(ctx context.Context, employeeID, clientIP string, success bool) {
	attempt := &LoginAttempt{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		ClientIP:   clientIP,
		Success:    success,
	}
	if err := s.repo.InsertAttempt(ctx, attempt); err != nil {
		s.logger.Error("record login attempt failed", zap.String("employee_id", employeeID), zap.Error(err))
		return
	}
	if success {
		return
	}

	since := s.clock.Now().Add(-failureWindow)
	failures, err := s.repo.CountRecentFailures(ctx, employeeID, since)
	if err != nil {
		s.logger.Error("count login failures failed", zap.String("employee_id", employeeID), zap.Error(err))
		return
	}
	if failures < failureThresholdMed {
		return
	}

	severity := SeverityMedium
	if failures >= failureThresholdHi {
		severity = SeverityHigh
	}

	open, err := s.repo.FindOpenAnomaly(ctx, AnomalyRepeatedLoginFailure, employeeID)
	if err != nil {
		s.logger.Error("lookup open anomaly failed", zap.String("employee_id", employeeID), zap.Error(err))
		return
	}
	if open != nil {
		if severity == SeverityHigh && open.Severity != SeverityHigh {
			open.Severity = SeverityHigh
			open.Detail = anomalyDetail(failures)
			if err := s.repo.UpdateAnomaly(ctx, open); err != nil {
				s.logger.Error("escalate anomaly failed", zap.String("anomaly_id", open.ID.String()), zap.Error(err))
			}
		}
		return
	}

	anomaly := &Anomaly{
		ID:         uuid.New(),
		Type:       AnomalyRepeatedLoginFailure,
		Severity:   severity,
		EmployeeID: employeeID,
		ClientIP:   clientIP,
		Detail:     anomalyDetail(failures),
	}
	if err := s.repo.InsertAnomaly(ctx, anomaly); err != nil {
		s.logger.Error("record anomaly failed", zap.String("employee_id", employeeID), zap.Error(err))
		return
	}
	s.logger.Warn("security anomaly recorded",
		zap.String("type", AnomalyRepeatedLoginFailure),
		zap.String("employee_id", employeeID),
		zap.String("severity", severity),
		zap.Int64("failures", failures),
	)
}

func (s *service) ListAnomalies(ctx context.Context, includeAcknowledged bool) ([]AnomalyResponse, error) {
	anomalies, err := s.repo.ListAnomalies(ctx, includeAcknowledged)
	if err != nil {
		return nil, err
	}
	resp := make([]AnomalyResponse, len(anomalies))
	for i, a := range anomalies {
		resp[i] = mapToAnomalyResponse(a)
	}
	return resp, nil
}

func (s *service) Acknowledge(ctx context.Context, anomalyID, actorID string) error {
	anomaly, err := s.repo.FindAnomalyByID(ctx, anomalyID)
	if err != nil {
		return err
	}
	if anomaly == nil {
		return securityerrors.ErrAnomalyNotFound
	}
	if anomaly.Acknowledged {
		return securityerrors.ErrAlreadyAcknowledged
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return err
	}
	anomaly.Acknowledged = true
	anomaly.AcknowledgedBy = &actor

	if err := s.repo.UpdateAnomaly(ctx, anomaly); err != nil {
		return err
	}
	s.logger.Info("anomaly acknowledged",
		zap.String("anomaly_id", anomalyID),
		zap.String("actor_id", actorID),
	)
	return nil
}

func anomalyDetail(failures int64) string {
	return fmt.Sprintf("%d failed logins within %s", failures, failureWindow)
}
