package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedule(t *testing.T) {
	t.Run("first grant six months after hire", func(t *testing.T) {
		hired := date(2024, 4, 1)
		events := leave.Schedule(&hired, date(2024, 10, 1))

		assert.Len(t, events, 1)
		assert.Equal(t, 0, events[0].Index)
		assert.Equal(t, date(2024, 10, 1), events[0].GrantDate)
		assert.Equal(t, "10", events[0].Days.String())
		assert.Equal(t, date(2026, 10, 1), events[0].Deadline)
	})

	t.Run("no grant before six months", func(t *testing.T) {
		hired := date(2024, 4, 1)
		events := leave.Schedule(&hired, date(2024, 9, 30))
		assert.Empty(t, events)
	})

	t.Run("statutory ladder over seven years", func(t *testing.T) {
		hired := date(2019, 4, 1)
		events := leave.Schedule(&hired, date(2026, 4, 1))

		assert.Len(t, events, 7)
		want := []string{"10", "11", "12", "14", "16", "18", "20"}
		for i, ev := range events {
			assert.Equal(t, i, ev.Index)
			assert.Equal(t, want[i], ev.Days.String())
			assert.Equal(t, date(2019+i, 10, 1), ev.GrantDate)
			assert.Equal(t, date(2021+i, 10, 1), ev.Deadline)
		}
	})

	t.Run("caps at twenty days beyond the table", func(t *testing.T) {
		hired := date(2000, 1, 15)
		events := leave.Schedule(&hired, date(2026, 8, 1))

		assert.Greater(t, len(events), 7)
		assert.Equal(t, "20", events[len(events)-1].Days.String())
	})

	t.Run("nil hire date yields nothing", func(t *testing.T) {
		assert.Nil(t, leave.Schedule(nil, date(2026, 1, 1)))
	})

	t.Run("month-end hire clamps instead of drifting", func(t *testing.T) {
		hired := date(2024, 8, 31)
		events := leave.Schedule(&hired, date(2025, 2, 28))

		assert.Len(t, events, 1)
		assert.Equal(t, date(2025, 2, 28), events[0].GrantDate)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		hired := date(2020, 6, 10)
		a := leave.Schedule(&hired, date(2026, 1, 1))
		b := leave.Schedule(&hired, date(2026, 1, 1))
		assert.Equal(t, a, b)
	})
}

func TestNextGrant(t *testing.T) {
	t.Run("projects the first future grant", func(t *testing.T) {
		hired := date(2024, 4, 1)

		next := leave.NextGrant(&hired, date(2024, 9, 30))
		assert.NotNil(t, next)
		assert.Equal(t, date(2024, 10, 1), next.GrantDate)
		assert.Equal(t, "10", next.Days.String())
	})

	t.Run("grant date today means the next one is a year away", func(t *testing.T) {
		hired := date(2024, 4, 1)

		next := leave.NextGrant(&hired, date(2024, 10, 1))
		assert.NotNil(t, next)
		assert.Equal(t, date(2025, 10, 1), next.GrantDate)
		assert.Equal(t, "11", next.Days.String())
	})

	t.Run("nil hire date", func(t *testing.T) {
		assert.Nil(t, leave.NextGrant(nil, date(2026, 1, 1)))
	})
}

func TestAddMonthsClamped(t *testing.T) {
	t.Run("clamps to shorter month", func(t *testing.T) {
		got := leave.AddMonthsClamped(date(2024, 1, 31), 1)
		assert.Equal(t, date(2024, 2, 29), got)
	})

	t.Run("plain month addition keeps the day", func(t *testing.T) {
		got := leave.AddMonthsClamped(date(2024, 3, 15), 6)
		assert.Equal(t, date(2024, 9, 15), got)
	})

	t.Run("leap day plus a year clamps to feb 28", func(t *testing.T) {
		got := leave.AddYearsClamped(date(2024, 2, 29), 1)
		assert.Equal(t, date(2025, 2, 28), got)
	})
}

func TestSpanDays(t *testing.T) {
	assert.Equal(t, int64(1), leave.SpanDays(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, int64(3), leave.SpanDays(date(2026, 3, 10), date(2026, 3, 12)))
	assert.Equal(t, int64(2), leave.SpanDays(date(2026, 3, 31), date(2026, 4, 1)))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "1", leave.Unit(leave.TypeFull).String())
	assert.Equal(t, "0.5", leave.Unit(leave.TypeHalfAM).String())
	assert.Equal(t, "0.5", leave.Unit(leave.TypeHalfPM).String())
}
