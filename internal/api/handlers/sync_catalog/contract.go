package sync_catalog

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/service/catalog/models"
)

type CatalogService interface {
	SyncFromContent(ctx context.Context) (*models.SyncResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
