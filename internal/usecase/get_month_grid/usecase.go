package get_month_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
)

// UseCase use case построения сеток календаря
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет use case построения сеток календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим сетку запрошенного месяца и следующего за ним
	primary := domain.BuildMonthGrid(req.Year, time.Month(req.Month))
	nextYear, nextMonth := domain.NextMonth(req.Year, time.Month(req.Month))
	secondary := domain.BuildMonthGrid(nextYear, nextMonth)

	uc.logger.Info("GetMonthGrid: built grids for %d-%02d and %d-%02d",
		req.Year, req.Month, nextYear, int(nextMonth))

	return &Response{
		Primary:   toGrid(req.Year, time.Month(req.Month), primary),
		Secondary: toGrid(nextYear, nextMonth, secondary),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}

	return nil
}

func toGrid(year int, month time.Month, g domain.MonthGrid) MonthGrid {
	return MonthGrid{
		Year:     year,
		Month:    int(month),
		Leading:  g.Leading,
		Current:  g.Current,
		Trailing: g.Trailing,
	}
}
