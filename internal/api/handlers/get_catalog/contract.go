package get_catalog

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
