package domain

import "math"

// EstimateTotal is the derived monetary result of one estimate session.
// Never persisted; recomputed on every relevant state change.
type EstimateTotal struct {
	HallTotal    int64
	RoomTotal    int64
	GrandTotal   int64
	HasSelection bool
}

// SplitRoomNights allocates a room's requested nights proportionally to
// the aggregate weekday/weekend ratio of the confirmed stay. The weekday
// share is rounded half away from zero; the weekend share absorbs the
// rounding remainder, so the two always sum to nights exactly.
//
// When no night has been classified yet (no range confirmed) both shares
// are zero: the room contributes nothing rather than failing.
func SplitRoomNights(nights, weekdayNights, weekendNights int) (weekday, weekend int) {
	total := weekdayNights + weekendNights
	if total == 0 || nights == 0 {
		return 0, 0
	}

	weekday = int(math.Round(float64(nights) * float64(weekdayNights) / float64(total)))
	weekend = nights - weekday
	return weekday, weekend
}

// ComputeHallTotal sums pricePerDay * daysRequested over the hall
// catalog. A day unit is atomic; there is no proration within a day.
func ComputeHallTotal(halls []Hall, hallDays map[string]int) int64 {
	var total int64
	for _, h := range halls {
		days := hallDays[h.Name]
		if days <= 0 {
			continue
		}
		total += h.PricePerDay * int64(days)
	}
	return total
}

// ComputeRoomTotal sums the per-room contributions:
// (weekdayPrice * weekdayShare + weekendPrice * weekendShare) * quantity,
// where the shares come from SplitRoomNights against the aggregate stay
// classification. Rooms with zero nights or zero quantity contribute
// nothing.
func ComputeRoomTotal(rooms []Room, roomNights, roomCounts map[string]int, weekdayNights, weekendNights int) int64 {
	var total int64
	for _, r := range rooms {
		nights := roomNights[r.Name]
		count := roomCounts[r.Name]
		if nights <= 0 || count <= 0 {
			continue
		}

		weekday, weekend := SplitRoomNights(nights, weekdayNights, weekendNights)
		total += (r.WeekdayPrice*int64(weekday) + r.WeekendPrice*int64(weekend)) * int64(count)
	}
	return total
}

// ComputeEstimate derives the full estimate from the catalog, the ledger
// and the weekday/weekend classification of the confirmed stay. A nil
// split (no confirmed range) degrades to zero-priced room nights.
//
// The computation never fails: invalid or incomplete inputs produce zero
// contributions, and HasSelection tells the caller whether a zero grand
// total means "nothing selected" or a genuine zero.
func ComputeEstimate(halls []Hall, rooms []Room, ledger QuantityLedger, split *NightDaySplit) EstimateTotal {
	var weekdayNights, weekendNights int
	if split != nil {
		weekdayNights = split.WeekdayNights
		weekendNights = split.WeekendNights
	}

	hallTotal := ComputeHallTotal(halls, ledger.HallDays)
	roomTotal := ComputeRoomTotal(rooms, ledger.RoomNights, ledger.RoomCounts, weekdayNights, weekendNights)

	return EstimateTotal{
		HallTotal:    hallTotal,
		RoomTotal:    roomTotal,
		GrandTotal:   hallTotal + roomTotal,
		HasSelection: ledger.HasSelection(),
	}
}
