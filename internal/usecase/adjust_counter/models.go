package adjust_counter

import "github.com/m04kA/HRS-EstimateService/internal/domain"

// Operation направление изменения счётчика
type Operation string

const (
	OpIncrement Operation = "increment"
	OpDecrement Operation = "decrement"
)

// Request модель запроса на изменение счётчика
type Request struct {
	SessionID string             // ID сессии расчёта
	UserID    int64              // ID пользователя-владельца
	Kind      domain.CounterKind // Семейство счётчиков (hall_days / room_nights / room_count)
	ItemName  string             // Имя позиции каталога
	Op        Operation          // increment или decrement
}

// Response модель ответа с новым значением счётчика
type Response struct {
	Kind     domain.CounterKind // Семейство счётчиков
	ItemName string             // Имя позиции каталога
	Value    int                // Значение после изменения
}
