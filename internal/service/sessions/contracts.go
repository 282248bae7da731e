package sessions

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий расчёта
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.EstimateSession) (*domain.EstimateSession, error)
	GetByID(ctx context.Context, id string) (*domain.EstimateSession, error)
	Update(ctx context.Context, sess *domain.EstimateSession) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository интерфейс репозитория каталога
// Нужен для инициализации счётчиков новой сессии по текущему каталогу
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
