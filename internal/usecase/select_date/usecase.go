package select_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
	"github.com/m04kA/HRS-EstimateService/pkg/ptr"
)

// UseCase use case выбора даты заезда/выезда кликом по календарю
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

// Execute выполняет use case выбора даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: session=%s, user=%d, date=%d-%02d-%02d",
		req.SessionID, req.UserID, req.Year, req.Month, req.Day)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, err
	}

	clicked := domain.NewCalendarDate(req.Year, time.Month(req.Month), req.Day)

	var resp *Response

	// 2. Применяем переход машины состояний внутри сериализуемой транзакции:
	// конкурирующие клики по одной сессии не должны терять друг друга
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		sess, err := uc.loadOwned(ctx, req.SessionID, req.UserID)
		if err != nil {
			return err
		}

		next, changed := sess.Selection.ClickDay(clicked)

		// 3. Проигнорированный клик не пишем в БД
		if changed {
			sess.Selection = next
			if err := uc.sessionRepo.Update(ctx, sess); err != nil {
				return fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
			}
		}

		resp = toResponse(next, changed)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrAccessDenied) {
			return nil, err
		}
		uc.logger.Error("SelectDate: transaction failed for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	if !resp.Changed {
		uc.logger.Info("SelectDate: click ignored for session=%s (check-out before check-in)", req.SessionID)
	} else {
		uc.logger.Info("SelectDate: session=%s updated, mode=%s", req.SessionID, resp.SelectionMode)
	}

	return resp, nil
}

// loadOwned достает сессию и проверяет владельца
func (uc *UseCase) loadOwned(ctx context.Context, id string, userID int64) (*domain.EstimateSession, error) {
	sess, err := uc.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if sess.UserID != userID {
		return nil, ErrAccessDenied
	}

	return sess, nil
}

func toResponse(sel domain.Selection, changed bool) *Response {
	return &Response{
		CheckIn:       formatDate(sel.Range.CheckIn),
		CheckOut:      formatDate(sel.Range.CheckOut),
		SelectionMode: string(sel.Mode),
		Changed:       changed,
	}
}

func formatDate(d *domain.CalendarDate) *string {
	if d == nil {
		return nil
	}
	return ptr.Ptr(d.Time().Format(domain.DateFormat))
}
