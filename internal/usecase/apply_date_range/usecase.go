package apply_date_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
)

// UseCase use case подтверждения диапазона дат
//
// Подтверждение — единственная операция, массово меняющая счётчики ночей:
// каждый тип номера получает полную длительность проживания, дальше
// пользователь корректирует счётчики по одному
type UseCase struct {
	sessionRepo SessionRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyDateRange: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2. Загружаем сессию и проверяем владельца
		sess, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
		}
		if sess.UserID != req.UserID {
			return ErrAccessDenied
		}

		// 3. Диапазон обязан охватывать хотя бы одну ночь
		split := domain.ComputeNightsDays(sess.Selection.Range)
		if split == nil {
			return ErrIncompleteRange
		}

		// 4. Перезаписываем счётчики ночей длительностью проживания
		sess.Ledger.ApplyNights(split.Nights)

		if err := uc.sessionRepo.Update(ctx, sess); err != nil {
			return fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}

		resp = &Response{
			Nights:        split.Nights,
			Days:          split.Days,
			WeekdayNights: split.WeekdayNights,
			WeekendNights: split.WeekendNights,
			RangeText:     domain.StaySummary(sess.Selection.Range, *split),
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrAccessDenied), errors.Is(err, ErrIncompleteRange):
			uc.logger.Warn("ApplyDateRange: session=%s: %v", req.SessionID, err)
		default:
			uc.logger.Error("ApplyDateRange: transaction failed for session=%s: %v", req.SessionID, err)
		}
		return nil, err
	}

	uc.logger.Info("ApplyDateRange: session=%s confirmed, nights=%d (weekday=%d, weekend=%d)",
		req.SessionID, resp.Nights, resp.WeekdayNights, resp.WeekendNights)
	return resp, nil
}
