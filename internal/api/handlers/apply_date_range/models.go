package apply_date_range

import (
	applyDateRange "github.com/m04kA/HRS-EstimateService/internal/usecase/apply_date_range"
)

// StayResponse HTTP response model с характеристиками проживания
type StayResponse struct {
	Nights        int    `json:"nights"`
	Days          int    `json:"days"`
	WeekdayNights int    `json:"weekdayNights"`
	WeekendNights int    `json:"weekendNights"`
	RangeText     string `json:"rangeText"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyDateRange.Response) *StayResponse {
	return &StayResponse{
		Nights:        resp.Nights,
		Days:          resp.Days,
		WeekdayNights: resp.WeekdayNights,
		WeekendNights: resp.WeekendNights,
		RangeText:     resp.RangeText,
	}
}
