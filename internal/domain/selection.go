package domain

// DateRange is a check-in/check-out pair. Either endpoint may be unset.
// When both are set, CheckIn <= CheckOut: the Selection transitions never
// produce an inverted range.
type DateRange struct {
	CheckIn  *CalendarDate
	CheckOut *CalendarDate
}

// IsComplete reports whether both endpoints are set.
func (r DateRange) IsComplete() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// Contains reports whether d lies within the range, endpoints inclusive.
// An incomplete range contains nothing.
func (r DateRange) Contains(d CalendarDate) bool {
	if !r.IsComplete() {
		return false
	}
	return !d.Before(*r.CheckIn) && !d.After(*r.CheckOut)
}

// Summary renders the range in the display form "YYYY.MM.DD ~ YYYY.MM.DD".
// Returns an empty string for an incomplete range.
func (r DateRange) Summary() string {
	if !r.IsComplete() {
		return ""
	}
	return r.CheckIn.Format() + " ~ " + r.CheckOut.Format()
}

// Selection is the interactive date-range cursor: the current range plus
// the mode deciding which endpoint the next day click sets.
//
// Lifecycle: the mode starts at check-in, flips to check-out once a
// check-in is chosen and flips back after a check-out is chosen.
type Selection struct {
	Range DateRange
	Mode  SelectionMode
}

// NewSelection returns an empty selection in check-in mode.
func NewSelection() Selection {
	return Selection{Mode: ModeCheckIn}
}

// ClickDay applies one day click to the selection and returns the new
// state. The second return value reports whether the click changed
// anything: a check-out click earlier than the chosen check-in is a
// deliberate no-op, not an error.
func (s Selection) ClickDay(d CalendarDate) (Selection, bool) {
	switch s.Mode {
	case ModeCheckIn:
		day := d
		s.Range.CheckIn = &day
		// A stale check-out earlier than the new check-in must not survive.
		if s.Range.CheckOut != nil && s.Range.CheckOut.Before(day) {
			s.Range.CheckOut = nil
		}
		s.Mode = ModeCheckOut
		return s, true

	case ModeCheckOut:
		if s.Range.CheckIn != nil && d.Before(*s.Range.CheckIn) {
			return s, false
		}
		day := d
		s.Range.CheckOut = &day
		s.Mode = ModeCheckIn
		return s, true
	}

	return s, false
}

// Reset clears both endpoints and returns the selection to check-in mode.
func (s Selection) Reset() Selection {
	return NewSelection()
}
