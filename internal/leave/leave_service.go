package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/events"
	leaveerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/leave/errors"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/messaging/kafka"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	SubmitBulk(ctx context.Context, userID string, reqs []CreateLeaveRequest) ([]LeaveResponse, error)
	GetMyRequests(ctx context.Context, userID string) ([]LeaveResponse, error)
	GetAllRequests(ctx context.Context, requesterID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id, reason string) (LeaveResponse, error)
	BulkApprove(ctx context.Context, ids []string) error
	GrantAdHoc(ctx context.Context, targetUserID, grantedByID string, req GrantLeaveRequest) error
	GetAccrualHistory(ctx context.Context, userID string) ([]AccrualResponse, error)
	Status(ctx context.Context, userID string) (LeaveStatusResponse, error)
	Monitoring(ctx context.Context, requesterID string) ([]MonitoringRow, error)
	PendingCount(ctx context.Context, requesterID string) (int64, error)
	FixConsistency(ctx context.Context) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	accruals  AccrualRepository
	employees EmployeeReader
	authority FacilityAuthority
	audit     AuditLogger
	outbox    kafka.OutboxRepository
	clock     clock.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	accruals AccrualRepository,
	employees EmployeeReader,
	authority FacilityAuthority,
	audit AuditLogger,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		accruals:  accruals,
		employees: employees,
		authority: authority,
		audit:     audit,
		clock:     clk,
		logger:    l,
	}
}

// NewServiceWithOutbox additionally records ad-hoc grants on the
// transactional outbox so the worker publishes them to kafka.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	accruals AccrualRepository,
	employees EmployeeReader,
	authority FacilityAuthority,
	audit AuditLogger,
	outbox kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	s := NewService(db, repo, accruals, employees, authority, audit, clk, logger...).(*service)
	s.outbox = outbox
	return s
}

func (s *service) calculator(accruals AccrualRepository, repo Repository, employees EmployeeReader) *BalanceCalculator {
	return NewBalanceCalculator(accruals, repo, employees, s.clock, s.logger)
}

func (s *service) Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("user_id", userID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.String("leave_type", req.LeaveType),
	)

	userUUID, startDate, endDate, leaveType, err := validateSubmit(userID, req)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	emp, err := qemployees.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("submit leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if emp == nil {
		return LeaveResponse{}, leaveerrors.ErrUserNotFound
	}

	overlap, err := qrepo.HasOverlapping(ctx, userID, startDate, endDate, []string{StatusPending, StatusApproved})
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("submit leave overlap detected",
			zap.String("user_id", userID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	p := &PaidLeave{
		ID:        uuid.New(),
		UserID:    userUUID,
		StartDate: startDate,
		EndDate:   endDate,
		LeaveType: leaveType,
		Reason:    req.Reason,
		Status:    StatusPending,
	}

	// Pre-check against the cached balance; approval re-checks against
	// a freshly computed one.
	if p.DaysRequested().Cmp(emp.LeaveDaysCache) > 0 {
		return LeaveResponse{}, apperror.Wrap(
			fmt.Errorf("requested %s, available %s", p.DaysRequested(), emp.LeaveDaysCache),
			leaveerrors.ErrInsufficientBalance.Code,
			leaveerrors.ErrInsufficientBalance.Message,
			leaveerrors.ErrInsufficientBalance.HTTPStatus,
		)
	}

	if err := qrepo.Create(ctx, p); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("submit leave success",
		zap.String("leave_id", p.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToResponse(*p), nil
}

func (s *service) SubmitBulk(ctx context.Context, userID string, reqs []CreateLeaveRequest) ([]LeaveResponse, error) {
	if len(reqs) == 0 {
		return nil, leaveerrors.ErrEmptyBulk
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	batch := make([]*PaidLeave, 0, len(reqs))
	batchTotal := decimal.Zero
	for _, req := range reqs {
		_, startDate, endDate, leaveType, err := validateSubmit(userID, req)
		if err != nil {
			return nil, err
		}
		p := &PaidLeave{
			ID:        uuid.New(),
			UserID:    userUUID,
			StartDate: startDate,
			EndDate:   endDate,
			LeaveType: leaveType,
			Reason:    req.Reason,
			Status:    StatusPending,
		}
		batch = append(batch, p)
		batchTotal = batchTotal.Add(p.DaysRequested())
	}

	// The batch must be consistent with itself before touching the store.
	for i := 0; i < len(batch); i++ {
		for j := i + 1; j < len(batch); j++ {
			if rangesOverlap(batch[i], batch[j]) {
				return nil, leaveerrors.ErrBulkOverlap
			}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk submit begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	emp, err := qemployees.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	for _, p := range batch {
		overlap, err := qrepo.HasOverlapping(ctx, userID, p.StartDate, p.EndDate, []string{StatusPending, StatusApproved})
		if err != nil {
			return nil, err
		}
		if overlap {
			return nil, leaveerrors.ErrLeaveOverlap
		}
	}

	if batchTotal.Cmp(emp.LeaveDaysCache) > 0 {
		return nil, apperror.Wrap(
			fmt.Errorf("batch total %s, available %s", batchTotal, emp.LeaveDaysCache),
			leaveerrors.ErrBulkInsufficientBalance.Code,
			leaveerrors.ErrBulkInsufficientBalance.Message,
			leaveerrors.ErrBulkInsufficientBalance.HTTPStatus,
		)
	}

	if err := qrepo.CreateAll(ctx, batch); err != nil {
		s.logger.Error("bulk submit persist failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk submit commit failed", zap.Error(err))
		return nil, err
	}

	s.audit.Log(ctx, "LEAVE_BULK_SUBMIT", userID,
		fmt.Sprintf("bulk submitted %d leave requests totalling %s days", len(batch), batchTotal), userID)
	s.logger.Info("bulk submit success",
		zap.String("user_id", userID),
		zap.Int("count", len(batch)),
		zap.String("total_days", batchTotal.String()),
	)

	out := make([]LeaveResponse, len(batch))
	for i, p := range batch {
		out[i] = mapToResponse(*p)
	}
	return out, nil
}

func (s *service) GetMyRequests(ctx context.Context, userID string) ([]LeaveResponse, error) {
	emp, err := s.employees.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	leaves, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// GetAllRequests lists requests inside the requester's authority scope:
// developers see everything, admins their managed facilities plus their
// own, everyone else is refused.
func (s *service) GetAllRequests(ctx context.Context, requesterID string) ([]LeaveResponse, error) {
	requester, err := s.employees.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	var leaves []PaidLeave
	switch requester.Role {
	case user.RoleDeveloper:
		leaves, err = s.repo.FindAll(ctx)
	case user.RoleAdmin:
		facilities, ferr := s.managedScope(ctx, requester)
		if ferr != nil {
			return nil, ferr
		}
		leaves, err = s.repo.FindByFacilities(ctx, facilities)
	default:
		return nil, leaveerrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, id string) (LeaveResponse, error) {
	s.logger.Debug("approve leave requested", zap.String("leave_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qaccruals := s.accruals.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	p, err := qrepo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if p == nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if p.Status != StatusPending {
		s.logger.Warn("approve leave invalid state",
			zap.String("leave_id", id),
			zap.String("status", p.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	emp, err := qemployees.FindByID(ctx, p.UserID.String())
	if err != nil {
		return LeaveResponse{}, err
	}
	if emp == nil {
		return LeaveResponse{}, leaveerrors.ErrUserNotFound
	}

	calc := s.calculator(qaccruals, qrepo, qemployees)
	fresh, err := calc.Recalculate(ctx, emp)
	if err != nil {
		s.logger.Error("approve leave recalculation failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if p.DaysRequested().Cmp(fresh.Remaining) > 0 {
		return LeaveResponse{}, apperror.Wrap(
			fmt.Errorf("requested %s, available %s", p.DaysRequested(), fresh.Remaining),
			leaveerrors.ErrInsufficientBalance.Code,
			leaveerrors.ErrInsufficientBalance.Message,
			leaveerrors.ErrInsufficientBalance.HTTPStatus,
		)
	}

	p.Status = StatusApproved
	p.RejectionReason = nil
	if err := qrepo.Update(ctx, p); err != nil {
		s.logger.Error("approve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	// Deduct through the simulation so the cache reflects the approval.
	if _, err := calc.Recalculate(ctx, emp); err != nil {
		s.logger.Error("approve leave cache update failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("approve leave success",
		zap.String("leave_id", id),
		zap.String("user_id", p.UserID.String()),
	)
	return mapToResponse(*p), nil
}

func (s *service) Reject(ctx context.Context, id, reason string) (LeaveResponse, error) {
	s.logger.Debug("reject leave requested", zap.String("leave_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)

	p, err := qrepo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if p == nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if p.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	p.Status = StatusRejected
	if reason != "" {
		p.RejectionReason = &reason
	}

	if err := qrepo.Update(ctx, p); err != nil {
		s.logger.Error("reject leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}
	s.logger.Info("reject leave success", zap.String("leave_id", id))
	return mapToResponse(*p), nil
}

// BulkApprove approves sequentially; the first failure aborts the
// remainder, leaving earlier approvals committed.
func (s *service) BulkApprove(ctx context.Context, ids []string) error {
	for i, id := range ids {
		if _, err := s.Approve(ctx, id); err != nil {
			s.logger.Warn("bulk approve aborted",
				zap.String("leave_id", id),
				zap.Int("approved", i),
				zap.Int("total", len(ids)),
				zap.Error(err),
			)
			return err
		}
	}

	s.audit.Log(ctx, "LEAVE_BULK_APPROVE", "", fmt.Sprintf("bulk approved %d leave requests", len(ids)), "")
	s.logger.Info("bulk approve success", zap.Int("count", len(ids)))
	return nil
}

func (s *service) GrantAdHoc(ctx context.Context, targetUserID, grantedByID string, req GrantLeaveRequest) error {
	days := decimal.NewFromFloat(req.DaysToGrant)
	if !days.IsPositive() {
		return leaveerrors.ErrInvalidGrantDays
	}
	grantedBy, err := uuid.Parse(grantedByID)
	if err != nil {
		return leaveerrors.ErrUserNotFound
	}

	deadline := AddYearsClamped(s.clock.Today(), 2)
	if req.Deadline != "" {
		d, err := parseDate(req.Deadline)
		if err != nil {
			return err
		}
		deadline = d
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qaccruals := s.accruals.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	emp, err := qemployees.FindByID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if emp == nil {
		return leaveerrors.ErrUserNotFound
	}

	accrual := &Accrual{
		UserID:      emp.ID,
		DaysGranted: days,
		GrantedAt:   s.clock.Now(),
		Deadline:    deadline,
		Source:      SourceAdHoc,
		GrantedByID: &grantedBy,
		Reason:      req.Reason,
	}
	if err := qaccruals.Insert(ctx, accrual); err != nil {
		s.logger.Error("ad-hoc grant persist failed", zap.String("user_id", targetUserID), zap.Error(err))
		return err
	}

	if _, err := s.calculator(qaccruals, qrepo, qemployees).Recalculate(ctx, emp); err != nil {
		return err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.LeaveGrantedEvent{
			EventType:   "leave.granted",
			UserID:      targetUserID,
			GrantedByID: grantedByID,
			Days:        req.DaysToGrant,
			Deadline:    deadline.Format("2006-01-02"),
			Reason:      req.Reason,
			OccurredAt:  s.clock.Now(),
		})
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			AggregateType: "paid_leave_accrual",
			AggregateID:   targetUserID,
			EventType:     "leave.granted",
			Topic:         events.LeaveGrantedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(ctx, "LEAVE_GRANT", targetUserID,
		fmt.Sprintf("granted %s paid leave days (deadline %s): %s", days, deadline.Format("2006-01-02"), req.Reason),
		grantedByID)
	s.logger.Info("ad-hoc grant success",
		zap.String("user_id", targetUserID),
		zap.String("granted_by", grantedByID),
		zap.String("days", days.String()),
	)
	return nil
}

func (s *service) GetAccrualHistory(ctx context.Context, userID string) ([]AccrualResponse, error) {
	emp, err := s.employees.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	accruals, err := s.accruals.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]AccrualResponse, len(accruals))
	for i, a := range accruals {
		out[i] = mapAccrualToResponse(a)
	}
	return out, nil
}

// Status reports the balance, next-grant projection and 5-day
// obligation verdict for one employee. Runs the calculator so the
// answer reflects freshly materialized buckets.
func (s *service) Status(ctx context.Context, userID string) (LeaveStatusResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveStatusResponse{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qaccruals := s.accruals.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	emp, err := qemployees.FindByID(ctx, userID)
	if err != nil {
		return LeaveStatusResponse{}, err
	}
	if emp == nil {
		return LeaveStatusResponse{}, leaveerrors.ErrUserNotFound
	}

	balance, err := s.calculator(qaccruals, qrepo, qemployees).Recalculate(ctx, emp)
	if err != nil {
		return LeaveStatusResponse{}, err
	}

	approved, err := qrepo.FindApprovedByUser(ctx, userID)
	if err != nil {
		return LeaveStatusResponse{}, err
	}
	compliance := EvaluateCompliance(emp.HiredAt, approved, s.clock.Today())

	if err := tx.Commit(); err != nil {
		return LeaveStatusResponse{}, err
	}
	return mapStatusToResponse(balance, compliance), nil
}

// Monitoring produces the administrative watchlist inside the
// requester's authority scope. Employees without a hire date appear
// with zeroed numbers and no flags raised.
func (s *service) Monitoring(ctx context.Context, requesterID string) ([]MonitoringRow, error) {
	requester, err := s.employees.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, leaveerrors.ErrUserNotFound
	}

	var employees []Employee
	switch requester.Role {
	case user.RoleDeveloper:
		all, err := s.employees.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, e := range all {
			if e.HiredAt != nil {
				employees = append(employees, e)
			}
		}
	case user.RoleAdmin:
		facilities, err := s.managedScope(ctx, requester)
		if err != nil {
			return nil, err
		}
		employees, err = s.employees.FindByFacilityIn(ctx, facilities)
		if err != nil {
			return nil, err
		}
	default:
		return nil, leaveerrors.ErrForbidden
	}

	rows := make([]MonitoringRow, 0, len(employees))
	for i := range employees {
		row, err := s.monitorOne(ctx, &employees[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *service) monitorOne(ctx context.Context, emp *Employee) (MonitoringRow, error) {
	if emp.HiredAt == nil {
		return zeroMonitoringRow(emp), nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MonitoringRow{}, err
	}
	defer tx.Rollback()

	qrepo := s.repo.WithTx(tx)
	qaccruals := s.accruals.WithTx(tx)
	qemployees := s.employees.WithTx(tx)

	balance, err := s.calculator(qaccruals, qrepo, qemployees).Recalculate(ctx, emp)
	if err != nil {
		return MonitoringRow{}, err
	}
	approved, err := qrepo.FindApprovedByUser(ctx, emp.ID.String())
	if err != nil {
		return MonitoringRow{}, err
	}
	compliance := EvaluateCompliance(emp.HiredAt, approved, s.clock.Today())

	if err := tx.Commit(); err != nil {
		return MonitoringRow{}, err
	}
	return mapMonitoringRow(emp, balance, compliance), nil
}

func (s *service) PendingCount(ctx context.Context, requesterID string) (int64, error) {
	requester, err := s.employees.FindByID(ctx, requesterID)
	if err != nil {
		return 0, err
	}
	if requester == nil {
		return 0, leaveerrors.ErrUserNotFound
	}

	switch requester.Role {
	case user.RoleDeveloper:
		return s.repo.CountByStatus(ctx, StatusPending)
	case user.RoleAdmin:
		facilities, err := s.managedScope(ctx, requester)
		if err != nil {
			return 0, err
		}
		return s.repo.CountByFacilitiesAndStatus(ctx, facilities, StatusPending)
	default:
		return 0, leaveerrors.ErrForbidden
	}
}

// FixConsistency recalculates every active employee, intended for use
// after bulk data imports.
func (s *service) FixConsistency(ctx context.Context) error {
	employees, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return err
	}

	fixed := 0
	for i := range employees {
		emp := &employees[i]
		if emp.HiredAt == nil {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}

		calc := s.calculator(s.accruals.WithTx(tx), s.repo.WithTx(tx), s.employees.WithTx(tx))
		if _, err := calc.Recalculate(ctx, emp); err != nil {
			tx.Rollback()
			s.logger.Error("fix consistency recalculation failed",
				zap.String("user_id", emp.ID.String()),
				zap.Error(err),
			)
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		fixed++
	}

	s.audit.Log(ctx, "LEAVE_FIX_CONSISTENCY", "", fmt.Sprintf("recalculated balances for %d users", fixed), "")
	s.logger.Info("fix consistency finished", zap.Int("users", fixed))
	return nil
}

func (s *service) managedScope(ctx context.Context, requester *Employee) ([]string, error) {
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

func validateSubmit(userID string, req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", leaveerrors.ErrUserNotFound
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, "", err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, "", leaveerrors.ErrInvalidDateRange
	}

	leaveType := req.LeaveType
	if leaveType == "" {
		leaveType = TypeFull
	}
	if !IsValidLeaveType(leaveType) {
		return uuid.Nil, time.Time{}, time.Time{}, "", leaveerrors.ErrInvalidLeaveType
	}
	// Half days are single-date only at this boundary; the simulation
	// itself would happily multiply a span by 0.5.
	if leaveType != TypeFull && !startDate.Equal(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, "", leaveerrors.ErrHalfDayRange
	}
	return userUUID, startDate, endDate, leaveType, nil
}

func rangesOverlap(a, b *PaidLeave) bool {
	return !a.StartDate.After(b.EndDate) && !b.StartDate.After(a.EndDate)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t.UTC(), nil
}
