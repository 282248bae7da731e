package domain

import "time"

// Hall is a bookable event hall billed per whole day.
// Catalog entries are immutable at runtime and identified by name,
// unique within the hall catalog.
type Hall struct {
	ID          int64
	Name        string
	PricePerDay int64 // whole currency units
	Capacity    int
	AreaSqm     float64
	Images      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room is a bookable room type billed per night, with separate weekday
// and weekend rates. Identified by name, unique within the room catalog.
type Room struct {
	ID             int64
	Name           string
	RoomTypeLabel  string
	BedDescription string
	AreaSqm        float64
	WeekdayPrice   int64 // whole currency units
	WeekendPrice   int64 // whole currency units
	Amenities      []string
	Images         []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSplitRates reports whether the room is actually priced differently
// on weekends.
func (r *Room) HasSplitRates() bool {
	return r.WeekdayPrice != r.WeekendPrice
}
