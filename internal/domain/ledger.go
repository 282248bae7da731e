package domain

// QuantityLedger holds the per-item counters of one estimate session:
// days requested per hall, nights and quantity requested per room type.
// Counters are keyed by catalog item name, sized 1:1 with the catalog at
// session creation, and never go below zero.
type QuantityLedger struct {
	HallDays   map[string]int `json:"hallDays"`
	RoomNights map[string]int `json:"roomNights"`
	RoomCounts map[string]int `json:"roomCounts"`
}

// NewQuantityLedger builds a zeroed ledger covering every catalog item.
func NewQuantityLedger(halls []Hall, rooms []Room) QuantityLedger {
	l := QuantityLedger{
		HallDays:   make(map[string]int, len(halls)),
		RoomNights: make(map[string]int, len(rooms)),
		RoomCounts: make(map[string]int, len(rooms)),
	}
	for _, h := range halls {
		l.HallDays[h.Name] = 0
	}
	for _, r := range rooms {
		l.RoomNights[r.Name] = 0
		l.RoomCounts[r.Name] = 0
	}
	return l
}

// counters returns the map backing the given counter family.
func (l *QuantityLedger) counters(kind CounterKind) map[string]int {
	switch kind {
	case CounterHallDays:
		return l.HallDays
	case CounterRoomNights:
		return l.RoomNights
	case CounterRoomCount:
		return l.RoomCounts
	}
	return nil
}

// Increment bumps the named counter by one. There is no upper bound.
// Returns false when the item is not part of the ledger.
func (l *QuantityLedger) Increment(kind CounterKind, name string) bool {
	m := l.counters(kind)
	if m == nil {
		return false
	}
	if _, ok := m[name]; !ok {
		return false
	}
	m[name]++
	return true
}

// Decrement lowers the named counter by one, clamped at zero.
// Decrementing a zero counter is a no-op, not an error.
// Returns false when the item is not part of the ledger.
func (l *QuantityLedger) Decrement(kind CounterKind, name string) bool {
	m := l.counters(kind)
	if m == nil {
		return false
	}
	v, ok := m[name]
	if !ok {
		return false
	}
	if v > 0 {
		m[name] = v - 1
	}
	return true
}

// Get returns the current value of the named counter.
func (l *QuantityLedger) Get(kind CounterKind, name string) (int, bool) {
	m := l.counters(kind)
	if m == nil {
		return 0, false
	}
	v, ok := m[name]
	return v, ok
}

// ApplyNights overwrites every room-nights counter with the confirmed
// stay length. Confirming a range seeds all rooms with the full stay;
// the user adjusts individual counters afterwards.
func (l *QuantityLedger) ApplyNights(nights int) {
	for name := range l.RoomNights {
		l.RoomNights[name] = nights
	}
}

// HasSelection reports whether any counter that can produce a charge is
// set: a hall with days requested, or a room with a nonzero quantity.
// Distinguishes "nothing selected yet" from a genuine zero total.
func (l *QuantityLedger) HasSelection() bool {
	for _, v := range l.HallDays {
		if v > 0 {
			return true
		}
	}
	for _, v := range l.RoomCounts {
		if v > 0 {
			return true
		}
	}
	return false
}
