package user

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/events"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/messaging/kafka"
	usererrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// NewServiceWithOutbox additionally emits user lifecycle events through
// the transactional outbox.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	s := NewService(db, repo, logger...).(*service)
	s.outbox = outbox
	return s
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("facility", req.Facility),
	)

	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if !IsValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	var hiredAt *time.Time
	if req.HiredAt != "" {
		d, err := time.Parse("2006-01-02", req.HiredAt)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidHiredAt
		}
		hiredAt = &d
	}

	// New accounts start with a random password behind an invitation
	// token; the user sets their own password on first login.
	invitation := newToken()
	tempPassword, err := bcrypt.GenerateFromPassword([]byte(newToken()), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)

	u := &User{
		ID:                    uuid.New(),
		EmployeeID:            req.EmployeeID,
		Password:              string(tempPassword),
		Name:                  req.Name,
		Email:                 req.Email,
		Facility:              req.Facility,
		Department:            req.Department,
		Role:                  role,
		HiredAt:               hiredAt,
		InitialAdjustmentDays: decimal.NewFromFloat(req.InitialAdjustmentDays),
		PaidLeaveDays:         decimal.Zero,
		MustChangePassword:    true,
		InvitationToken:       &invitation,
	}

	if err := qrepo.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return UserResponse{}, usererrors.ErrEmployeeIDTaken
		}
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.UserCreatedEvent{
			EventType:  "user.created",
			UserID:     u.ID.String(),
			EmployeeID: u.EmployeeID,
			Facility:   u.Facility,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return UserResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			AggregateType: "user",
			AggregateID:   u.ID.String(),
			EventType:     "user.created",
			Topic:         events.UserCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}
	s.logger.Info("create user success",
		zap.String("user_id", u.ID.String()),
		zap.String("employee_id", u.EmployeeID),
	)

	return mapToResponse(*u, true), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return mapToResponse(*u, false), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if !IsValidRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)

	u, err := qrepo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	u.Name = req.Name
	u.Email = req.Email
	u.Facility = req.Facility
	u.Department = req.Department
	u.Role = req.Role
	if req.HiredAt != nil {
		if *req.HiredAt == "" {
			u.HiredAt = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.HiredAt)
			if err != nil {
				return UserResponse{}, usererrors.ErrInvalidHiredAt
			}
			u.HiredAt = &d
		}
	}
	if req.InitialAdjustmentDays != nil {
		u.InitialAdjustmentDays = decimal.NewFromFloat(*req.InitialAdjustmentDays)
	}

	if err := qrepo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(*u, false), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return usererrors.ErrUserNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) Restore(ctx context.Context, id string) error {
	// FindByID excludes tombstoned rows; a visible row is not deleted.
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u != nil {
		return usererrors.ErrUserNotDeleted
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return err
	}
	s.logger.Info("restore user success", zap.String("user_id", id))
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func newToken() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
