package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_StateMachine(t *testing.T) {
	sel := NewSelection()
	require.Equal(t, ModeCheckIn, sel.Mode)

	// Первый клик выбирает дату заезда и переключает режим
	sel, changed := sel.ClickDay(NewCalendarDate(2025, time.May, 1))
	require.True(t, changed)
	require.Equal(t, ModeCheckOut, sel.Mode)
	require.NotNil(t, sel.Range.CheckIn)
	assert.Nil(t, sel.Range.CheckOut)

	// Второй клик выбирает дату выезда и возвращает режим
	sel, changed = sel.ClickDay(NewCalendarDate(2025, time.May, 3))
	require.True(t, changed)
	assert.Equal(t, ModeCheckIn, sel.Mode)
	require.True(t, sel.Range.IsComplete())
	assert.True(t, sel.Range.CheckIn.Equal(NewCalendarDate(2025, time.May, 1)))
	assert.True(t, sel.Range.CheckOut.Equal(NewCalendarDate(2025, time.May, 3)))
}

func TestSelection_EarlierCheckOutIgnored(t *testing.T) {
	sel := NewSelection()
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 10))

	// Клик по дате раньше заезда в режиме check-out игнорируется полностью
	next, changed := sel.ClickDay(NewCalendarDate(2025, time.May, 5))
	assert.False(t, changed)
	assert.Equal(t, sel, next)
	assert.Equal(t, ModeCheckOut, next.Mode)
	assert.Nil(t, next.Range.CheckOut)
}

func TestSelection_NewCheckInClearsStaleCheckOut(t *testing.T) {
	sel := NewSelection()
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 10))
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 15))
	require.True(t, sel.Range.IsComplete())

	// Новый заезд позже старого выезда: выезд сбрасывается
	sel, changed := sel.ClickDay(NewCalendarDate(2025, time.May, 20))
	require.True(t, changed)
	assert.Equal(t, ModeCheckOut, sel.Mode)
	require.NotNil(t, sel.Range.CheckIn)
	assert.True(t, sel.Range.CheckIn.Equal(NewCalendarDate(2025, time.May, 20)))
	assert.Nil(t, sel.Range.CheckOut)
}

func TestSelection_NewEarlierCheckInKeepsCheckOut(t *testing.T) {
	sel := NewSelection()
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 10))
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 15))

	// Новый заезд раньше существующего выезда: выезд сохраняется
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 12))
	require.NotNil(t, sel.Range.CheckOut)
	assert.True(t, sel.Range.CheckOut.Equal(NewCalendarDate(2025, time.May, 15)))
	assert.Equal(t, ModeCheckOut, sel.Mode)
}

func TestSelection_SameDayCheckOutAllowed(t *testing.T) {
	// Клик по той же дате в режиме check-out не раньше заезда — принимается,
	// невалидность нулевой длительности отсекает ComputeNightsDays
	sel := NewSelection()
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 10))
	sel, changed := sel.ClickDay(NewCalendarDate(2025, time.May, 10))
	require.True(t, changed)
	require.True(t, sel.Range.IsComplete())
	assert.Nil(t, ComputeNightsDays(sel.Range))
}

func TestSelection_Reset(t *testing.T) {
	sel := NewSelection()
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 10))
	sel, _ = sel.ClickDay(NewCalendarDate(2025, time.May, 15))

	sel = sel.Reset()
	assert.Equal(t, ModeCheckIn, sel.Mode)
	assert.Nil(t, sel.Range.CheckIn)
	assert.Nil(t, sel.Range.CheckOut)
}

func TestDateRange_Contains(t *testing.T) {
	start := NewCalendarDate(2025, time.May, 10)
	end := NewCalendarDate(2025, time.May, 15)
	r := DateRange{CheckIn: &start, CheckOut: &end}

	assert.True(t, r.Contains(NewCalendarDate(2025, time.May, 10)))
	assert.True(t, r.Contains(NewCalendarDate(2025, time.May, 12)))
	assert.True(t, r.Contains(NewCalendarDate(2025, time.May, 15)))
	assert.False(t, r.Contains(NewCalendarDate(2025, time.May, 9)))
	assert.False(t, r.Contains(NewCalendarDate(2025, time.May, 16)))

	assert.False(t, DateRange{}.Contains(NewCalendarDate(2025, time.May, 12)))
}
