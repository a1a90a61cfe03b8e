package leave

import (
	"context"
	"time"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceResult is the output of one balance recalculation.
type BalanceResult struct {
	Remaining     decimal.Decimal
	NextGrantDate *time.Time
	NextGrantDays decimal.Decimal

	// UnservedDays is approved demand no eligible bucket could cover.
	// Kept for observability only; it is never an error.
	UnservedDays decimal.Decimal
}

// BalanceCalculator materializes missing scheduled buckets, replays
// approved requests against them front-to-back and writes the resulting
// balance back to the user row. It must run inside the caller's
// transaction: pass tx-bound repositories.
type BalanceCalculator struct {
	accruals  AccrualRepository
	leaves    Repository
	employees EmployeeReader
	clock     clock.Clock
	logger    *zap.Logger
}

func NewBalanceCalculator(
	accruals AccrualRepository,
	leaves Repository,
	employees EmployeeReader,
	clk clock.Clock,
	logger ...*zap.Logger,
) *BalanceCalculator {
	l := zap.L().Named("leave.balance")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.balance")
	}
	return &BalanceCalculator{
		accruals:  accruals,
		leaves:    leaves,
		employees: employees,
		clock:     clk,
		logger:    l,
	}
}

// withTx rebinds every repository to the given transaction.
func (c *BalanceCalculator) withTx(accruals AccrualRepository, leaves Repository, employees EmployeeReader) *BalanceCalculator {
	return &BalanceCalculator{
		accruals:  accruals,
		leaves:    leaves,
		employees: employees,
		clock:     c.clock,
		logger:    c.logger,
	}
}

// Recalculate runs the full cycle for one employee: materialize, load,
// simulate, project, write back. Idempotent: a second run with no
// intervening writes inserts nothing and produces the same cache value.
func (c *BalanceCalculator) Recalculate(ctx context.Context, emp *Employee) (BalanceResult, error) {
	today := c.clock.Today()

	if err := c.materializeScheduled(ctx, emp, today); err != nil {
		return BalanceResult{}, err
	}

	buckets, err := c.accruals.ListActive(ctx, emp.ID.String())
	if err != nil {
		return BalanceResult{}, err
	}
	approved, err := c.leaves.FindApprovedByUser(ctx, emp.ID.String())
	if err != nil {
		return BalanceResult{}, err
	}

	remaining, unserved := simulateFIFO(buckets, approved)

	// Expired buckets drop out regardless of unused days.
	total := decimal.Zero
	for i, b := range buckets {
		if DateOnly(b.Deadline).After(today) {
			total = total.Add(remaining[i])
		}
	}
	total = total.Add(emp.InitialAdjustmentDays)

	result := BalanceResult{
		Remaining:    total,
		UnservedDays: unserved,
	}
	if next := NextGrant(emp.HiredAt, today); next != nil {
		d := next.GrantDate
		result.NextGrantDate = &d
		result.NextGrantDays = next.Days
	}

	if err := c.employees.UpdateLeaveCache(ctx, emp.ID.String(), total); err != nil {
		return BalanceResult{}, err
	}
	emp.LeaveDaysCache = total

	c.logger.Debug("balance recalculated",
		zap.String("user_id", emp.ID.String()),
		zap.String("remaining", total.String()),
		zap.String("unserved", unserved.String()),
	)
	return result, nil
}

// materializeScheduled inserts any scheduled bucket the statutory
// schedule expects but the store lacks, keyed on (user, deadline). This
// is the only path that creates scheduled buckets.
func (c *BalanceCalculator) materializeScheduled(ctx context.Context, emp *Employee, today time.Time) error {
	for _, ev := range Schedule(emp.HiredAt, today) {
		existing, err := c.accruals.FindByDeadline(ctx, emp.ID.String(), ev.Deadline)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if err := c.accruals.Insert(ctx, &Accrual{
			UserID:      emp.ID,
			DaysGranted: ev.Days,
			GrantedAt:   ev.GrantDate,
			Deadline:    ev.Deadline,
			Source:      SourceScheduled,
		}); err != nil {
			return err
		}
		c.logger.Info("scheduled accrual granted",
			zap.String("user_id", emp.ID.String()),
			zap.String("days", ev.Days.String()),
			zap.Time("grant_date", ev.GrantDate),
			zap.Time("deadline", ev.Deadline),
		)
	}
	return nil
}

// simulateFIFO replays approved requests in start-date order against the
// earliest-granted eligible bucket. A bucket is eligible for a request
// when it still has remaining days, was granted on or before the start
// date, and its deadline is after the start date. Demand that finds no
// eligible bucket is dropped, not failed; an already-approved request
// never retroactively errors.
func simulateFIFO(buckets []Accrual, approved []PaidLeave) (remaining []decimal.Decimal, unserved decimal.Decimal) {
	remaining = make([]decimal.Decimal, len(buckets))
	for i, b := range buckets {
		remaining[i] = b.DaysGranted
	}
	unserved = decimal.Zero

	for _, req := range approved {
		need := req.DaysRequested()
		start := DateOnly(req.StartDate)

		for need.IsPositive() {
			idx := -1
			for i, b := range buckets {
				if !remaining[i].IsPositive() {
					continue
				}
				if DateOnly(b.GrantedAt).After(start) {
					continue
				}
				if !DateOnly(b.Deadline).After(start) {
					continue
				}
				idx = i
				break
			}
			if idx < 0 {
				unserved = unserved.Add(need)
				break
			}

			take := decimal.Min(remaining[idx], need)
			remaining[idx] = remaining[idx].Sub(take)
			need = need.Sub(take)
		}
	}
	return remaining, unserved
}
