package adjust_counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
)

// UseCase use case изменения счётчика сессии на единицу
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

// Execute выполняет use case изменения счётчика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdjustCounter: session=%s, user=%d, kind=%s, item=%q, op=%s",
		req.SessionID, req.UserID, req.Kind, req.ItemName, req.Op)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdjustCounter: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	// 2. Изменяем счётчик внутри сериализуемой транзакции: конкурирующие
	// клики +/- по одной сессии не должны терять инкременты
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
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

		// 3. Применяем операцию; декремент нуля — no-op с floor на нуле
		var ok bool
		switch req.Op {
		case OpIncrement:
			ok = sess.Ledger.Increment(req.Kind, req.ItemName)
		case OpDecrement:
			ok = sess.Ledger.Decrement(req.Kind, req.ItemName)
		}
		if !ok {
			return ErrItemNotFound
		}

		if err := uc.sessionRepo.Update(ctx, sess); err != nil {
			return fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}

		value, _ := sess.Ledger.Get(req.Kind, req.ItemName)
		resp = &Response{
			Kind:     req.Kind,
			ItemName: req.ItemName,
			Value:    value,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrAccessDenied), errors.Is(err, ErrItemNotFound):
			uc.logger.Warn("AdjustCounter: session=%s: %v", req.SessionID, err)
		default:
			uc.logger.Error("AdjustCounter: transaction failed for session=%s: %v", req.SessionID, err)
		}
		return nil, err
	}

	uc.logger.Info("AdjustCounter: session=%s, %s[%q]=%d", req.SessionID, resp.Kind, resp.ItemName, resp.Value)
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if !domain.IsValidCounterKind(req.Kind) {
		return fmt.Errorf("%w: unknown counter kind %q", ErrInvalidInput, req.Kind)
	}
	if req.ItemName == "" {
		return fmt.Errorf("%w: itemName is required", ErrInvalidInput)
	}
	if req.Op != OpIncrement && req.Op != OpDecrement {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, req.Op)
	}
	return nil
}
