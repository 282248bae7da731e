package catalog

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	"github.com/m04kA/HRS-EstimateService/internal/integrations/contentservice"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListHalls(ctx context.Context) ([]domain.Hall, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	UpsertHall(ctx context.Context, hall *domain.Hall) (*domain.Hall, error)
	UpsertRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// ContentServiceClient интерфейс клиента CMS
type ContentServiceClient interface {
	GetCatalogWithGracefulDegradation(ctx context.Context) ([]contentservice.Hall, []contentservice.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
