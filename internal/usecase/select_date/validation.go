package select_date

import (
	"fmt"
	"time"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}

	// Клики по контекстным дням соседних месяцев не доходят до обработчика,
	// поэтому день обязан существовать в указанном месяце
	if req.Day < 1 || req.Day > domain.DaysInMonth(req.Year, time.Month(req.Month)) {
		return fmt.Errorf("%w: day %d does not exist in %d-%02d", ErrInvalidInput, req.Day, req.Year, req.Month)
	}

	return nil
}
