package apply_date_range

import (
	"context"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий расчёта
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.EstimateSession, error)
	Update(ctx context.Context, sess *domain.EstimateSession) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
