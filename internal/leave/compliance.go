package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// obligationTarget is the statutory minimum of days that must actually
// be taken inside each annual cycle.
var obligationTarget = decimal.NewFromInt(5)

// ComplianceStatus is the 5-day obligation verdict for one employee.
type ComplianceStatus struct {
	Active     bool
	CycleStart time.Time
	CycleEnd   time.Time

	CurrentTaken  decimal.Decimal
	Target        decimal.Decimal
	Met           bool
	Warning       bool
	Violation     bool
	DaysRemaining decimal.Decimal
}

// EvaluateCompliance classifies the current annual obligation cycle.
// Pure: depends only on hire date, the approved requests and today.
//
// The cycle grid is anchored on hireDate + 6 months; each cycle is one
// civil year, closed-open. Before the first anchor there is no active
// cycle and the obligation is trivially met. A previous-cycle shortfall
// counts as a violation unless the current cycle already meets the
// target, in which case current achievement outweighs the past failure.
func EvaluateCompliance(hireDate *time.Time, approved []PaidLeave, today time.Time) ComplianceStatus {
	today = DateOnly(today)

	if hireDate == nil {
		return ComplianceStatus{Met: true, Target: decimal.Zero, DaysRemaining: decimal.Zero}
	}

	firstBase := AddMonthsClamped(DateOnly(*hireDate), 6)
	if today.Before(firstBase) {
		return ComplianceStatus{Met: true, Target: decimal.Zero, DaysRemaining: decimal.Zero}
	}

	yearsElapsed := 0
	for AddYearsClamped(firstBase, yearsElapsed+1).Compare(today) <= 0 {
		yearsElapsed++
	}
	cycleStart := AddYearsClamped(firstBase, yearsElapsed)
	cycleEnd := AddYearsClamped(firstBase, yearsElapsed+1)

	currentTaken := CountTakenInCycle(approved, cycleStart, cycleEnd)
	met := currentTaken.Cmp(obligationTarget) >= 0

	warning := !met && !today.Before(AddMonthsClamped(cycleEnd, -3))

	violation := false
	if yearsElapsed >= 1 && !met {
		prevStart := AddYearsClamped(firstBase, yearsElapsed-1)
		prevTaken := CountTakenInCycle(approved, prevStart, cycleStart)
		violation = prevTaken.Cmp(obligationTarget) < 0
	}

	daysRemaining := obligationTarget.Sub(currentTaken)
	if daysRemaining.IsNegative() {
		daysRemaining = decimal.Zero
	}

	return ComplianceStatus{
		Active:        true,
		CycleStart:    cycleStart,
		CycleEnd:      cycleEnd,
		CurrentTaken:  currentTaken,
		Target:        obligationTarget,
		Met:           met,
		Warning:       warning,
		Violation:     violation,
		DaysRemaining: daysRemaining,
	}
}

// CountTakenInCycle sums leave days falling inside the closed-open
// cycle [start, end): for each approved request, the length of the
// intersection of [startDate, endDate] with [start, end-1d] times the
// leave-type unit.
func CountTakenInCycle(approved []PaidLeave, start, end time.Time) decimal.Decimal {
	start = DateOnly(start)
	lastDay := DateOnly(end).AddDate(0, 0, -1)

	total := decimal.Zero
	for _, req := range approved {
		from := DateOnly(req.StartDate)
		to := DateOnly(req.EndDate)

		if from.Before(start) {
			from = start
		}
		if to.After(lastDay) {
			to = lastDay
		}
		if to.Before(from) {
			continue
		}

		days := decimal.NewFromInt(SpanDays(from, to))
		total = total.Add(days.Mul(Unit(req.LeaveType)))
	}
	return total
}
