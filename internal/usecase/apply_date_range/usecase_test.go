package apply_date_range

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
	cp := *sess
	return &cp, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, sess *domain.EstimateSession) error {
	f.sessions[sess.ID] = sess
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sessionWithRange(checkIn, checkOut *domain.CalendarDate) *domain.EstimateSession {
	halls := []domain.Hall{{Name: "Grand Hall", PricePerDay: 308000}}
	rooms := []domain.Room{
		{Name: "Deluxe Double", WeekdayPrice: 77000, WeekendPrice: 99000},
		{Name: "Family Suite", WeekdayPrice: 132000, WeekendPrice: 165000},
	}

	return &domain.EstimateSession{
		ID:     "s1",
		UserID: 42,
		Selection: domain.Selection{
			Range: domain.DateRange{CheckIn: checkIn, CheckOut: checkOut},
			Mode:  domain.ModeCheckIn,
		},
		Ledger: domain.NewQuantityLedger(halls, rooms),
	}
}

func TestExecute_SeedsAllRoomNights(t *testing.T) {
	in := domain.NewCalendarDate(2025, time.May, 1)
	out := domain.NewCalendarDate(2025, time.May, 3)
	sess := sessionWithRange(&in, &out)

	repo := &fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sess}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 2, resp.WeekdayNights)
	assert.Equal(t, 0, resp.WeekendNights)
	assert.Equal(t, "2025.05.01 ~ 2025.05.03 (2/3)", resp.RangeText)

	// Все счётчики ночей перезаписаны длительностью проживания
	saved := repo.sessions["s1"]
	for name, nights := range saved.Ledger.RoomNights {
		assert.Equal(t, 2, nights, "room %s", name)
	}
	// Остальные счётчики не тронуты
	for _, v := range saved.Ledger.HallDays {
		assert.Zero(t, v)
	}
	for _, v := range saved.Ledger.RoomCounts {
		assert.Zero(t, v)
	}
}

func TestExecute_IncompleteRange(t *testing.T) {
	in := domain.NewCalendarDate(2025, time.May, 1)

	tests := []struct {
		name string
		sess *domain.EstimateSession
	}{
		{"no dates", sessionWithRange(nil, nil)},
		{"check-in only", sessionWithRange(&in, nil)},
		{"same day", sessionWithRange(&in, &in)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": tt.sess}}
			uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 42})
			assert.ErrorIs(t, err, ErrIncompleteRange)
		})
	}
}

func TestExecute_AccessDenied(t *testing.T) {
	in := domain.NewCalendarDate(2025, time.May, 1)
	out := domain.NewCalendarDate(2025, time.May, 3)
	repo := &fakeSessionRepo{sessions: map[string]*domain.EstimateSession{"s1": sessionWithRange(&in, &out)}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_SessionNotFound(t *testing.T) {
	repo := &fakeSessionRepo{sessions: map[string]*domain.EstimateSession{}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", UserID: 42})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
