package calculate_estimate

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий расчёта
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.EstimateSession, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListHalls(ctx context.Context) ([]domain.Hall, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
