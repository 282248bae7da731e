package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() ([]Hall, []Room) {
	halls := []Hall{
		{ID: 1, Name: "Grand Hall", PricePerDay: 308000, Capacity: 200, AreaSqm: 340},
		{ID: 2, Name: "Convention Hall", PricePerDay: 198000, Capacity: 80, AreaSqm: 120},
	}
	rooms := []Room{
		{ID: 1, Name: "Deluxe Double", WeekdayPrice: 77000, WeekendPrice: 99000},
		{ID: 2, Name: "Family Suite", WeekdayPrice: 132000, WeekendPrice: 165000},
	}
	return halls, rooms
}

func TestNewQuantityLedger(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	require.Len(t, l.HallDays, 2)
	require.Len(t, l.RoomNights, 2)
	require.Len(t, l.RoomCounts, 2)

	for _, m := range []map[string]int{l.HallDays, l.RoomNights, l.RoomCounts} {
		for name, v := range m {
			assert.Zero(t, v, "counter %s must start at zero", name)
		}
	}
	assert.False(t, l.HasSelection())
}

func TestQuantityLedger_IncrementDecrement(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	require.True(t, l.Increment(CounterHallDays, "Grand Hall"))
	require.True(t, l.Increment(CounterHallDays, "Grand Hall"))
	v, _ := l.Get(CounterHallDays, "Grand Hall")
	assert.Equal(t, 2, v)

	require.True(t, l.Decrement(CounterHallDays, "Grand Hall"))
	v, _ = l.Get(CounterHallDays, "Grand Hall")
	assert.Equal(t, 1, v)
}

func TestQuantityLedger_DecrementFloorsAtZero(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	// Декремент нулевого счётчика — no-op, значение не уходит в минус
	for i := 0; i < 5; i++ {
		require.True(t, l.Decrement(CounterRoomCount, "Deluxe Double"))
	}
	v, _ := l.Get(CounterRoomCount, "Deluxe Double")
	assert.Zero(t, v)

	// Произвольная последовательность операций не даёт отрицательных значений
	l.Increment(CounterRoomCount, "Deluxe Double")
	l.Decrement(CounterRoomCount, "Deluxe Double")
	l.Decrement(CounterRoomCount, "Deluxe Double")
	l.Increment(CounterRoomCount, "Deluxe Double")
	v, _ = l.Get(CounterRoomCount, "Deluxe Double")
	assert.Equal(t, 1, v)
}

func TestQuantityLedger_UnknownItem(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	assert.False(t, l.Increment(CounterHallDays, "No Such Hall"))
	assert.False(t, l.Decrement(CounterRoomNights, "No Such Room"))
	assert.False(t, l.Increment(CounterKind("bogus"), "Grand Hall"))

	_, ok := l.Get(CounterHallDays, "No Such Hall")
	assert.False(t, ok)
}

func TestQuantityLedger_ApplyNights(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	l.Increment(CounterRoomNights, "Deluxe Double")

	// Подтверждение диапазона безусловно перезаписывает все счётчики ночей
	l.ApplyNights(3)
	for name, v := range l.RoomNights {
		assert.Equal(t, 3, v, "room %s", name)
	}

	// Счётчики залов и количества комнат не затрагиваются
	for _, v := range l.HallDays {
		assert.Zero(t, v)
	}
	for _, v := range l.RoomCounts {
		assert.Zero(t, v)
	}
}

func TestQuantityLedger_HasSelection(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	// Одни только ночи без количества комнат — ещё не выбор
	l.ApplyNights(2)
	assert.False(t, l.HasSelection())

	l.Increment(CounterRoomCount, "Family Suite")
	assert.True(t, l.HasSelection())

	l.Decrement(CounterRoomCount, "Family Suite")
	assert.False(t, l.HasSelection())

	l.Increment(CounterHallDays, "Grand Hall")
	assert.True(t, l.HasSelection())
}
