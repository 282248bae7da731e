package get_estimate

import (
	"context"

	calculateEstimate "github.com/m04kA/HRS-EstimateService/internal/usecase/calculate_estimate"
)

type CalculateEstimateUseCase interface {
	Execute(ctx context.Context, req *calculateEstimate.Request) (*calculateEstimate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
