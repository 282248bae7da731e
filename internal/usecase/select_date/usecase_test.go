package select_date

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.EstimateSession
	updates  int
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
	f.updates++
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

func newFixture(sess *domain.EstimateSession) (*UseCase, *fakeSessionRepo) {
	repo := &fakeSessionRepo{sessions: map[string]*domain.EstimateSession{}}
	if sess != nil {
		repo.sessions[sess.ID] = sess
	}
	return NewUseCase(repo, fakeTxManager{}, nopLogger{}), repo
}

func newSession(id string, userID int64) *domain.EstimateSession {
	return &domain.EstimateSession{
		ID:        id,
		UserID:    userID,
		Selection: domain.NewSelection(),
		Ledger:    domain.QuantityLedger{},
	}
}

func TestExecute_FirstClickSetsCheckIn(t *testing.T) {
	uc, repo := newFixture(newSession("s1", 42))

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2025, Month: 5, Day: 1,
	})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2025-05-01", *resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Equal(t, string(domain.ModeCheckOut), resp.SelectionMode)
	assert.Equal(t, 1, repo.updates)
}

func TestExecute_SecondClickSetsCheckOut(t *testing.T) {
	uc, _ := newFixture(newSession("s1", 42))

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2025, Month: 5, Day: 1,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2025, Month: 5, Day: 3,
	})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "2025-05-03", *resp.CheckOut)
	assert.Equal(t, string(domain.ModeCheckIn), resp.SelectionMode)
}

func TestExecute_EarlierCheckOutIgnoredAndNotPersisted(t *testing.T) {
	uc, repo := newFixture(newSession("s1", 42))

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2025, Month: 5, Day: 10,
	})
	require.NoError(t, err)
	updatesBefore := repo.updates

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2025, Month: 5, Day: 5,
	})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Nil(t, resp.CheckOut)
	assert.Equal(t, string(domain.ModeCheckOut), resp.SelectionMode)
	// Проигнорированный клик не пишется в репозиторий
	assert.Equal(t, updatesBefore, repo.updates)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newFixture(newSession("s1", 42))

	tests := []struct {
		name string
		req  Request
	}{
		{"empty session", Request{UserID: 42, Year: 2025, Month: 5, Day: 1}},
		{"bad month", Request{SessionID: "s1", UserID: 42, Year: 2025, Month: 13, Day: 1}},
		{"day out of month", Request{SessionID: "s1", UserID: 42, Year: 2025, Month: 4, Day: 31}},
		{"nonexistent leap day", Request{SessionID: "s1", UserID: 42, Year: 2025, Month: 2, Day: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// 29 февраля високосного года валидно
	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 42, Year: 2024, Month: 2, Day: 29,
	})
	assert.NoError(t, err)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc, _ := newFixture(nil)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "missing", UserID: 42, Year: 2025, Month: 5, Day: 1,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, _ := newFixture(newSession("s1", 42))

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1", UserID: 7, Year: 2025, Month: 5, Day: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
