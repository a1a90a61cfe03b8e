package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/attendance/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetMyRequests(ctx context.Context, userID string) ([]AttendanceResponse, error)
	GetAllRequests(ctx context.Context, requesterID string) ([]AttendanceResponse, error)
	Approve(ctx context.Context, id string) (AttendanceResponse, error)
	Reject(ctx context.Context, id, reason string) (AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	staff     StaffReader
	authority FacilityAuthority
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	staff StaffReader,
	authority FacilityAuthority,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		staff:     staff,
		authority: authority,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, userID string, req CreateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("submit attendance request",
		zap.String("user_id", userID),
		zap.String("request_type", req.RequestType),
		zap.String("start_date", req.StartDate),
	)

	userUUID, startDate, endDate, err := validateSubmit(userID, req)
	if err != nil {
		s.logger.Warn("submit attendance validation failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qstaff := s.staff.WithTx(tx)

	member, err := qstaff.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("submit attendance user lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if member == nil {
		return AttendanceResponse{}, attendanceerrors.ErrUserNotFound
	}

	dup, err := qrepo.HasDuplicate(ctx, userID, startDate, req.RequestType, []string{StatusPending, StatusApproved})
	if err != nil {
		s.logger.Error("submit attendance duplicate check failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if dup {
		s.logger.Warn("submit attendance duplicate detected",
			zap.String("user_id", userID),
			zap.String("request_type", req.RequestType),
			zap.String("start_date", req.StartDate),
		)
		return AttendanceResponse{}, attendanceerrors.ErrDuplicateRequest
	}

	a := &AttendanceRequest{
		ID:          uuid.New(),
		UserID:      userUUID,
		RequestType: req.RequestType,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      StatusPending,
	}
	if req.StartTime != "" {
		v := req.StartTime
		a.StartTime = &v
	}
	if req.EndTime != "" {
		v := req.EndTime
		a.EndTime = &v
	}

	if err := qrepo.Create(ctx, a); err != nil {
		s.logger.Error("submit attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	s.logger.Info("submit attendance success",
		zap.String("request_id", a.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetMyRequests(ctx context.Context, userID string) ([]AttendanceResponse, error) {
	member, err := s.staff.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, attendanceerrors.ErrUserNotFound
	}

	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// GetAllRequests lists requests inside the requester's authority scope:
// developers see everything, admins their managed facilities plus their
// own, everyone else is refused.
func (s *service) GetAllRequests(ctx context.Context, requesterID string) ([]AttendanceResponse, error) {
	requester, err := s.staff.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, attendanceerrors.ErrUserNotFound
	}

	var rows []RequestWithUser
	switch requester.Role {
	case user.RoleDeveloper:
		rows, err = s.repo.FindAll(ctx)
	case user.RoleAdmin:
		facilities, ferr := s.managedScope(ctx, requester)
		if ferr != nil {
			return nil, ferr
		}
		rows, err = s.repo.FindByFacilities(ctx, facilities)
	default:
		return nil, attendanceerrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Approve(ctx context.Context, id string) (AttendanceResponse, error) {
	return s.decide(ctx, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, id, reason string) (AttendanceResponse, error) {
	return s.decide(ctx, id, StatusRejected, reason)
}

// decide moves a pending request to its terminal status. Attendance
// corrections carry no balance, so approval has no deduction step.
func (s *service) decide(ctx context.Context, id, status, reason string) (AttendanceResponse, error) {
	s.logger.Debug("decide attendance request",
		zap.String("request_id", id),
		zap.String("status", status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)

	a, err := qrepo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if a == nil {
		return AttendanceResponse{}, attendanceerrors.ErrRequestNotFound
	}
	if a.Status != StatusPending {
		s.logger.Warn("decide attendance invalid state",
			zap.String("request_id", id),
			zap.String("status", a.Status),
		)
		return AttendanceResponse{}, attendanceerrors.ErrNotPending
	}

	a.Status = status
	if status == StatusRejected && reason != "" {
		a.RejectionReason = &reason
	}

	if err := qrepo.Update(ctx, a); err != nil {
		s.logger.Error("decide attendance persist failed", zap.String("request_id", id), zap.Error(err))
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	s.logger.Info("decide attendance success",
		zap.String("request_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*a), nil
}

func (s *service) managedScope(ctx context.Context, requester *StaffMember) ([]string, error) {
	facilities, err := s.authority.ManagedFacilities(ctx, requester.ID.String())
	if err != nil {
		return nil, err
	}
	for _, f := range facilities {
		if f == requester.Facility {
			return facilities, nil
		}
	}
	return append(facilities, requester.Facility), nil
}

func validateSubmit(userID string, req CreateAttendanceRequest) (uuid.UUID, time.Time, time.Time, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrUserNotFound
	}

	if req.RequestType == "PAID_LEAVE" {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrPaidLeaveChannel
	}
	if !IsValidRequestType(req.RequestType) {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrInvalidRequestType
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateRange
	}

	if err := validateTimes(req); err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	return userUUID, startDate, endDate, nil
}

func validateTimes(req CreateAttendanceRequest) error {
	if RequiresStartTime(req.RequestType) && req.StartTime == "" {
		return attendanceerrors.ErrStartTimeRequired
	}

	var start, end *time.Time
	if req.StartTime != "" {
		t, err := parseClockTime(req.StartTime)
		if err != nil {
			return err
		}
		start = &t
	}
	if req.EndTime != "" {
		t, err := parseClockTime(req.EndTime)
		if err != nil {
			return err
		}
		end = &t
	}
	if start != nil && end != nil && start.After(*end) {
		return attendanceerrors.ErrTimeOrder
	}

	// Shift corrections settle on the payroll grid, so partial-day
	// types only accept quarter-hour times.
	if RequiresStartTime(req.RequestType) {
		if start != nil && start.Minute()%15 != 0 {
			return attendanceerrors.ErrTimeInterval
		}
		if end != nil && end.Minute()%15 != 0 {
			return attendanceerrors.ErrTimeInterval
		}
	}
	return nil
}

func parseClockTime(v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidTimeFormat
	}
	return t, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
