package domain

import (
	"fmt"
	"time"
)

// NightDaySplit holds the trip-length figures derived from a confirmed
// range: nights, days (nights + 1) and the weekday/weekend partition of
// the nights. WeekdayNights + WeekendNights == Nights always.
type NightDaySplit struct {
	Nights        int
	Days          int
	WeekdayNights int
	WeekendNights int
}

// ComputeNightsDays derives the night/day figures for a range.
// Returns nil when either endpoint is unset or when the range does not
// span at least one night: a same-day range is rejected, not zero-filled.
func ComputeNightsDays(r DateRange) *NightDaySplit {
	if !r.IsComplete() {
		return nil
	}

	nights := int(r.CheckOut.Time().Sub(r.CheckIn.Time()) / (24 * time.Hour))
	if nights <= 0 {
		return nil
	}

	weekday, weekend := CountNightsByKind(r)

	return &NightDaySplit{
		Nights:        nights,
		Days:          nights + 1,
		WeekdayNights: weekday,
		WeekendNights: weekend,
	}
}

// CountNightsByKind classifies every night of the stay as weekday or
// weekend. A night is identified by the date it starts on; the iteration
// runs from check-in inclusive up to but excluding check-out, so the
// counts partition the night count exactly. Returns zeros for an
// incomplete range.
func CountNightsByKind(r DateRange) (weekday, weekend int) {
	if !r.IsComplete() {
		return 0, 0
	}

	for t := r.CheckIn.Time(); t.Before(r.CheckOut.Time()); t = t.AddDate(0, 0, 1) {
		wd := t.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekend++
		} else {
			weekday++
		}
	}

	return weekday, weekend
}

// StaySummary renders the confirmed range with its night/day counts,
// e.g. "2025.05.01 ~ 2025.05.03 (2/3)". The raw Nights/Days pair stays
// available for callers that need locale-specific wording.
func StaySummary(r DateRange, split NightDaySplit) string {
	if !r.IsComplete() {
		return ""
	}
	return fmt.Sprintf("%s (%d/%d)", r.Summary(), split.Nights, split.Days)
}
