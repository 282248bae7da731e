package adjust_counter

import (
	"context"

	adjustCounter "github.com/m04kA/HRS-EstimateService/internal/usecase/adjust_counter"
)

type AdjustCounterUseCase interface {
	Execute(ctx context.Context, req *adjustCounter.Request) (*adjustCounter.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
