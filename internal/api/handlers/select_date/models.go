package select_date

import (
	selectDate "github.com/m04kA/HRS-EstimateService/internal/usecase/select_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// SelectionResponse HTTP response model с состоянием селектора дат
type SelectionResponse struct {
	CheckIn       *string `json:"checkIn,omitempty"`
	CheckOut      *string `json:"checkOut,omitempty"`
	SelectionMode string  `json:"selectionMode"`
	Changed       bool    `json:"changed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest(sessionID string, userID int64) *selectDate.Request {
	return &selectDate.Request{
		SessionID: sessionID,
		UserID:    userID,
		Year:      r.Year,
		Month:     r.Month,
		Day:       r.Day,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDate.Response) *SelectionResponse {
	return &SelectionResponse{
		CheckIn:       resp.CheckIn,
		CheckOut:      resp.CheckOut,
		SelectionMode: resp.SelectionMode,
		Changed:       resp.Changed,
	}
}
