package domain

// SelectionMode tracks which endpoint the next day click will set.
type SelectionMode string

const (
	ModeCheckIn  SelectionMode = "check_in"
	ModeCheckOut SelectionMode = "check_out"
)

// CounterKind identifies one of the three ledger counter families.
type CounterKind string

const (
	CounterHallDays   CounterKind = "hall_days"
	CounterRoomNights CounterKind = "room_nights"
	CounterRoomCount  CounterKind = "room_count"
)

// GridCells is the fixed size of a displayed month grid (6 full weeks).
const GridCells = 42

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD (wire format)
	DisplayDateFormat = "2006.01.02" // YYYY.MM.DD (range summary)
)

// ValidCounterKinds список допустимых видов счётчиков
// Используется при валидации входных данных
var ValidCounterKinds = []CounterKind{
	CounterHallDays,
	CounterRoomNights,
	CounterRoomCount,
}

// IsValidCounterKind reports whether k names a known counter family.
func IsValidCounterKind(k CounterKind) bool {
	for _, v := range ValidCounterKinds {
		if v == k {
			return true
		}
	}
	return false
}
