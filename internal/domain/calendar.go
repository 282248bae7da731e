package domain

import "time"

// CalendarDate is a date without a time-of-day component.
// Two values are equal iff year, month and day all match.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate builds a CalendarDate from its parts.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Time converts the date to a time.Time at midnight UTC.
// Used for ordering and duration arithmetic.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is chronologically before other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is chronologically after other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether both dates denote the same calendar day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// IsZero reports whether the date has not been set.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Weekday returns the day of the week for the date.
func (d CalendarDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekendNight reports whether a night starting on this date is billed
// at the weekend rate (Saturday or Sunday).
func (d CalendarDate) IsWeekendNight() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Format renders the date in the display format YYYY.MM.DD.
func (d CalendarDate) Format() string {
	return d.Time().Format(DisplayDateFormat)
}

// DaysInMonth returns the number of days in the given month,
// accounting for leap years via the Gregorian rule.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the day of the week of the first day
// of the given month (Sunday == 0).
func FirstWeekdayOfMonth(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// MonthGrid is the fixed 6x7 day grid for one displayed month.
// Leading holds the trailing day numbers of the previous month,
// Current holds 1..N for the month itself, Trailing holds the leading
// day numbers of the next month. The three always sum to GridCells.
type MonthGrid struct {
	Year     int
	Month    time.Month
	Leading  []int
	Current  []int
	Trailing []int
}

// CellCount returns the total number of cells in the grid.
func (g MonthGrid) CellCount() int {
	return len(g.Leading) + len(g.Current) + len(g.Trailing)
}

// BuildMonthGrid computes the 42-cell day grid for the given month,
// aligned to a Sunday-first week.
func BuildMonthGrid(year int, month time.Month) MonthGrid {
	leadingCount := int(FirstWeekdayOfMonth(year, month))
	currentCount := DaysInMonth(year, month)

	prevYear, prevMonth := PreviousMonth(year, month)
	daysInPrev := DaysInMonth(prevYear, prevMonth)

	grid := MonthGrid{
		Year:     year,
		Month:    month,
		Leading:  make([]int, leadingCount),
		Current:  make([]int, currentCount),
		Trailing: make([]int, GridCells-leadingCount-currentCount),
	}

	for i := range grid.Leading {
		grid.Leading[i] = daysInPrev - leadingCount + i + 1
	}
	for i := range grid.Current {
		grid.Current[i] = i + 1
	}
	for i := range grid.Trailing {
		grid.Trailing[i] = i + 1
	}

	return grid
}

// PreviousMonth shifts a year/month pair back one calendar month.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth shifts a year/month pair forward one calendar month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}
