package calculate_estimate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.EstimateSession
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*domain.EstimateSession, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return sess, nil
}

type fakeCatalogRepo struct {
	halls []domain.Hall
	rooms []domain.Room
}

func (f *fakeCatalogRepo) ListHalls(context.Context) ([]domain.Hall, error) { return f.halls, nil }
func (f *fakeCatalogRepo) ListRooms(context.Context) ([]domain.Room, error) { return f.rooms, nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixtureCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		halls: []domain.Hall{{Name: "Grand Hall", PricePerDay: 308000}},
		rooms: []domain.Room{{Name: "Deluxe Double", WeekdayPrice: 77000, WeekendPrice: 99000}},
	}
}

func fixtureSession(catalog *fakeCatalogRepo, checkIn, checkOut *domain.CalendarDate) *domain.EstimateSession {
	return &domain.EstimateSession{
		ID:     "s1",
		UserID: 42,
		Selection: domain.Selection{
			Range: domain.DateRange{CheckIn: checkIn, CheckOut: checkOut},
			Mode:  domain.ModeCheckIn,
		},
		Ledger: domain.NewQuantityLedger(catalog.halls, catalog.rooms),
	}
}

func TestExecute_FullEstimate(t *testing.T) {
	catalog := fixtureCatalog()

	// 1 мая 2025 (чт) — 3 мая 2025 (сб): 2 будние ночи
	in := domain.NewCalendarDate(2025, time.May, 1)
	out := domain.NewCalendarDate(2025, time.May, 3)
	sess := fixtureSession(catalog, &in, &out)
	sess.Ledger.ApplyNights(2)
	sess.Ledger.Increment(domain.CounterRoomCount, "Deluxe Double")
	sess.Ledger.Increment(domain.CounterHallDays, "Grand Hall")
	sess.Ledger.Increment(domain.CounterHallDays, "Grand Hall")

	uc := NewUseCase(
		&fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}},
		catalog,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(616000), resp.HallTotal)
	assert.Equal(t, int64(154000), resp.RoomTotal)
	assert.Equal(t, int64(770000), resp.GrandTotal)
	assert.True(t, resp.HasSelection)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "2025.05.01 ~ 2025.05.03 (2/3)", resp.RangeText)

	require.Len(t, resp.Halls, 1)
	assert.Equal(t, int64(616000), resp.Halls[0].Subtotal)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, 2, resp.Rooms[0].WeekdayNights)
	assert.Equal(t, 0, resp.Rooms[0].WeekendNights)
	assert.Equal(t, int64(154000), resp.Rooms[0].Subtotal)
}

func TestExecute_EmptySession(t *testing.T) {
	catalog := fixtureCatalog()
	sess := fixtureSession(catalog, nil, nil)

	uc := NewUseCase(
		&fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}},
		catalog,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
	require.NoError(t, err)

	assert.Zero(t, resp.GrandTotal)
	assert.False(t, resp.HasSelection)
	assert.Zero(t, resp.Nights)
	assert.Empty(t, resp.RangeText)
}

func TestExecute_NoRangeButItemsSelected(t *testing.T) {
	catalog := fixtureCatalog()
	sess := fixtureSession(catalog, nil, nil)
	sess.Ledger.Increment(domain.CounterRoomNights, "Deluxe Double")
	sess.Ledger.Increment(domain.CounterRoomCount, "Deluxe Double")

	uc := NewUseCase(
		&fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}},
		catalog,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
	require.NoError(t, err)

	// Ночи не классифицированы: номер не даёт вклада, но выбор зафиксирован
	assert.Zero(t, resp.GrandTotal)
	assert.True(t, resp.HasSelection)
}

func TestExecute_MixedRates(t *testing.T) {
	catalog := fixtureCatalog()

	// 2 мая 2025 (пт) — 5 мая 2025 (пн): 1 будняя + 2 выходные ночи
	in := domain.NewCalendarDate(2025, time.May, 2)
	out := domain.NewCalendarDate(2025, time.May, 5)
	sess := fixtureSession(catalog, &in, &out)
	sess.Ledger.ApplyNights(3)
	sess.Ledger.Increment(domain.CounterRoomCount, "Deluxe Double")

	uc := NewUseCase(
		&fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}},
		catalog,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(77000+2*99000), resp.RoomTotal)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, 1, resp.Rooms[0].WeekdayNights)
	assert.Equal(t, 2, resp.Rooms[0].WeekendNights)
}

func TestExecute_Errors(t *testing.T) {
	catalog := fixtureCatalog()
	sess := fixtureSession(catalog, nil, nil)
	uc := NewUseCase(
		&fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}},
		catalog,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", UserID: 42})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "", UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
