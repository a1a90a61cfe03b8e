package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statutory grant table (Labor Standards Law, full-time schedule).
// Index i is the i-th scheduled grant: the first falls 6 months after
// hire, each following one a year later.
var statutoryGrantDays = []int64{10, 11, 12, 14, 16, 18, 20}

// scheduleHorizonCap bounds materialization work to a 50-year tenure.
const scheduleHorizonCap = 50

// GrantEvent is one entry of the statutory accrual schedule.
type GrantEvent struct {
	Index     int
	GrantDate time.Time
	Days      decimal.Decimal
	Deadline  time.Time
}

// GrantDaysForIndex returns the statutory days for the i-th scheduled
// grant; tenure beyond the table caps at 20.
func GrantDaysForIndex(i int) decimal.Decimal {
	if i < 0 {
		return decimal.Zero
	}
	if i >= len(statutoryGrantDays) {
		i = len(statutoryGrantDays) - 1
	}
	return decimal.NewFromInt(statutoryGrantDays[i])
}

// Schedule generates every statutory grant with grantDate <= horizon for
// the given hire date. A nil hire date yields an empty schedule. The
// result depends only on its inputs; repeated calls are identical.
func Schedule(hireDate *time.Time, horizon time.Time) []GrantEvent {
	if hireDate == nil {
		return nil
	}

	base := AddMonthsClamped(DateOnly(*hireDate), 6)
	horizon = DateOnly(horizon)

	var events []GrantEvent
	for i := 0; i < scheduleHorizonCap; i++ {
		grantDate := AddYearsClamped(base, i)
		if grantDate.After(horizon) {
			break
		}
		events = append(events, GrantEvent{
			Index:     i,
			GrantDate: grantDate,
			Days:      GrantDaysForIndex(i),
			Deadline:  AddYearsClamped(grantDate, 2),
		})
	}
	return events
}

// NextGrant projects the first scheduled grant strictly after today.
// Returns nil for employees without a hire date or beyond the horizon.
func NextGrant(hireDate *time.Time, today time.Time) *GrantEvent {
	if hireDate == nil {
		return nil
	}

	base := AddMonthsClamped(DateOnly(*hireDate), 6)
	today = DateOnly(today)

	for i := 0; i < scheduleHorizonCap; i++ {
		grantDate := AddYearsClamped(base, i)
		if grantDate.After(today) {
			ev := GrantEvent{
				Index:     i,
				GrantDate: grantDate,
				Days:      GrantDaysForIndex(i),
				Deadline:  AddYearsClamped(grantDate, 2),
			}
			return &ev
		}
	}
	return nil
}

// DateOnly truncates a timestamp to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped adds civil months keeping the day-of-month, clamping
// to the last day of the target month (Jan 31 + 1 month = Feb 28/29).
// time.AddDate normalizes instead of clamping, which would drift grant
// anniversaries for month-end hires.
func AddMonthsClamped(t time.Time, months int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	target := firstOfMonth.AddDate(0, months, 0)
	day := t.Day()
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddYearsClamped adds civil years, clamping Feb 29 to Feb 28 on
// non-leap targets.
func AddYearsClamped(t time.Time, years int) time.Time {
	return AddMonthsClamped(t, years*12)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
