package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"january", 2025, time.January, 31},
		{"april", 2025, time.April, 30},
		{"february regular", 2025, time.February, 28},
		{"february leap", 2024, time.February, 29},
		{"february century non-leap", 1900, time.February, 28},
		{"february 400-year leap", 2000, time.February, 29},
		{"december", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	// 1 мая 2025 — четверг
	assert.Equal(t, time.Thursday, FirstWeekdayOfMonth(2025, time.May))
	// 1 июня 2025 — воскресенье
	assert.Equal(t, time.Sunday, FirstWeekdayOfMonth(2025, time.June))
}

func TestBuildMonthGrid_May2025(t *testing.T) {
	grid := BuildMonthGrid(2025, time.May)

	require.Len(t, grid.Leading, 4)
	require.Len(t, grid.Current, 31)
	require.Len(t, grid.Trailing, 7)
	assert.Equal(t, GridCells, grid.CellCount())

	// Хвост апреля: 27, 28, 29, 30
	assert.Equal(t, []int{27, 28, 29, 30}, grid.Leading)
	assert.Equal(t, 1, grid.Current[0])
	assert.Equal(t, 31, grid.Current[30])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, grid.Trailing)
}

func TestBuildMonthGrid_AlwaysFortyTwoCells(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildMonthGrid(year, month)
			assert.Equal(t, GridCells, grid.CellCount(), "year=%d month=%s", year, month)
			assert.Len(t, grid.Current, DaysInMonth(year, month), "year=%d month=%s", year, month)
			assert.Len(t, grid.Leading, int(FirstWeekdayOfMonth(year, month)), "year=%d month=%s", year, month)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	y, m := NextMonth(2025, time.December)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.January, m)

	y, m = PreviousMonth(2025, time.January)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)

	y, m = NextMonth(2025, time.April)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.May, m)
}

func TestCalendarDate_Comparison(t *testing.T) {
	a := NewCalendarDate(2025, time.May, 1)
	b := NewCalendarDate(2025, time.May, 3)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(NewCalendarDate(2025, time.May, 1)))
}

func TestCalendarDate_IsWeekendNight(t *testing.T) {
	// 3 мая 2025 — суббота, 4 мая — воскресенье, 5 мая — понедельник
	assert.True(t, NewCalendarDate(2025, time.May, 3).IsWeekendNight())
	assert.True(t, NewCalendarDate(2025, time.May, 4).IsWeekendNight())
	assert.False(t, NewCalendarDate(2025, time.May, 5).IsWeekendNight())
}

func TestCalendarDate_Format(t *testing.T) {
	assert.Equal(t, "2025.05.01", NewCalendarDate(2025, time.May, 1).Format())
}
