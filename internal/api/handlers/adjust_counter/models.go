package adjust_counter

import (
	"github.com/m04kA/HRS-EstimateService/internal/domain"
	adjustCounter "github.com/m04kA/HRS-EstimateService/internal/usecase/adjust_counter"
)

// AdjustCounterRequest HTTP request model
type AdjustCounterRequest struct {
	Kind     string `json:"kind"`     // hall_days / room_nights / room_count
	ItemName string `json:"itemName"` // Имя позиции каталога
	Op       string `json:"op"`       // increment / decrement
}

// CounterResponse HTTP response model с новым значением счетчика
type CounterResponse struct {
	Kind     string `json:"kind"`
	ItemName string `json:"itemName"`
	Value    int    `json:"value"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdjustCounterRequest) ToUseCaseRequest(sessionID string, userID int64) *adjustCounter.Request {
	return &adjustCounter.Request{
		SessionID: sessionID,
		UserID:    userID,
		Kind:      domain.CounterKind(r.Kind),
		ItemName:  r.ItemName,
		Op:        adjustCounter.Operation(r.Op),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adjustCounter.Response) *CounterResponse {
	return &CounterResponse{
		Kind:     string(resp.Kind),
		ItemName: resp.ItemName,
		Value:    resp.Value,
	}
}
