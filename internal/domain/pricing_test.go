package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRoomNights(t *testing.T) {
	tests := []struct {
		name          string
		nights        int
		weekdayNights int
		weekendNights int
		wantWeekday   int
		wantWeekend   int
	}{
		{"all weekday", 2, 2, 0, 2, 0},
		{"all weekend", 2, 0, 2, 0, 2},
		{"even split", 2, 1, 1, 1, 1},
		{"round half up", 3, 1, 1, 2, 1},
		{"matches aggregate", 5, 3, 2, 3, 2},
		{"fewer nights than stay", 2, 3, 2, 1, 1},
		{"no classified nights", 4, 0, 0, 0, 0},
		{"zero nights", 0, 3, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weekday, weekend := SplitRoomNights(tt.nights, tt.weekdayNights, tt.weekendNights)
			assert.Equal(t, tt.wantWeekday, weekday)
			assert.Equal(t, tt.wantWeekend, weekend)
		})
	}
}

func TestSplitRoomNights_SharesAlwaysSumExactly(t *testing.T) {
	// Остаток округления поглощается выходной долей:
	// weekday + weekend == nights для любых входов с классифицированными ночами
	for nights := 0; nights <= 30; nights++ {
		for weekdayNights := 0; weekdayNights <= 10; weekdayNights++ {
			for weekendNights := 0; weekendNights <= 10; weekendNights++ {
				if weekdayNights+weekendNights == 0 {
					continue
				}
				weekday, weekend := SplitRoomNights(nights, weekdayNights, weekendNights)
				require.Equal(t, nights, weekday+weekend,
					"nights=%d weekday=%d weekend=%d", nights, weekdayNights, weekendNights)
				require.GreaterOrEqual(t, weekday, 0)
			}
		}
	}
}

func TestComputeHallTotal(t *testing.T) {
	halls, _ := testCatalog()

	total := ComputeHallTotal(halls, map[string]int{"Grand Hall": 2})
	assert.Equal(t, int64(616000), total)

	total = ComputeHallTotal(halls, map[string]int{"Grand Hall": 1, "Convention Hall": 3})
	assert.Equal(t, int64(308000+3*198000), total)

	// Нулевые счётчики не дают вклада
	assert.Zero(t, ComputeHallTotal(halls, map[string]int{"Grand Hall": 0, "Convention Hall": 0}))
}

func TestComputeRoomTotal(t *testing.T) {
	_, rooms := testCatalog()

	// 2 будние ночи по будничному тарифу
	total := ComputeRoomTotal(rooms,
		map[string]int{"Deluxe Double": 2},
		map[string]int{"Deluxe Double": 1},
		2, 0)
	assert.Equal(t, int64(154000), total)

	// Количество умножает вклад
	total = ComputeRoomTotal(rooms,
		map[string]int{"Deluxe Double": 2},
		map[string]int{"Deluxe Double": 3},
		2, 0)
	assert.Equal(t, int64(462000), total)

	// Ночи без количества или количество без ночей — ноль
	assert.Zero(t, ComputeRoomTotal(rooms,
		map[string]int{"Deluxe Double": 2}, map[string]int{"Deluxe Double": 0}, 2, 0))
	assert.Zero(t, ComputeRoomTotal(rooms,
		map[string]int{"Deluxe Double": 0}, map[string]int{"Deluxe Double": 2}, 2, 0))

	// Диапазон не подтверждён: ночи есть, но классифицированных ночей нет — вклад нулевой
	assert.Zero(t, ComputeRoomTotal(rooms,
		map[string]int{"Deluxe Double": 2}, map[string]int{"Deluxe Double": 1}, 0, 0))
}

func TestComputeRoomTotal_MixedRates(t *testing.T) {
	_, rooms := testCatalog()

	// 1 будняя + 2 выходные ночи
	total := ComputeRoomTotal(rooms,
		map[string]int{"Family Suite": 3},
		map[string]int{"Family Suite": 1},
		1, 2)
	assert.Equal(t, int64(132000+2*165000), total)
}

func TestComputeEstimate(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	r := rangeOf(2025, time.May, 1, 2025, time.May, 3)
	split := ComputeNightsDays(r)
	require.NotNil(t, split)
	require.Equal(t, 2, split.WeekdayNights)
	require.Equal(t, 0, split.WeekendNights)

	l.ApplyNights(split.Nights)
	l.Increment(CounterRoomCount, "Deluxe Double")
	l.Increment(CounterHallDays, "Grand Hall")
	l.Increment(CounterHallDays, "Grand Hall")

	total := ComputeEstimate(halls, rooms, l, split)
	assert.Equal(t, int64(616000), total.HallTotal)
	assert.Equal(t, int64(154000), total.RoomTotal)
	assert.Equal(t, int64(770000), total.GrandTotal)
	assert.True(t, total.HasSelection)
}

func TestComputeEstimate_ZeroLedger(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	total := ComputeEstimate(halls, rooms, l, nil)
	assert.Zero(t, total.HallTotal)
	assert.Zero(t, total.RoomTotal)
	assert.Zero(t, total.GrandTotal)
	assert.False(t, total.HasSelection)
}

func TestComputeEstimate_NoConfirmedRange(t *testing.T) {
	halls, rooms := testCatalog()
	l := NewQuantityLedger(halls, rooms)

	// Комнаты выбраны, но диапазон не подтверждён: итог нулевой,
	// при этом HasSelection отличает это состояние от пустого выбора
	l.Increment(CounterRoomCount, "Deluxe Double")
	l.Increment(CounterRoomNights, "Deluxe Double")

	total := ComputeEstimate(halls, rooms, l, nil)
	assert.Zero(t, total.GrandTotal)
	assert.True(t, total.HasSelection)
}
