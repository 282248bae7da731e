package apply_date_range

import (
	"context"

	applyDateRange "github.com/m04kA/HRS-EstimateService/internal/usecase/apply_date_range"
)

type ApplyDateRangeUseCase interface {
	Execute(ctx context.Context, req *applyDateRange.Request) (*applyDateRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
