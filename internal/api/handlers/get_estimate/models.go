package get_estimate

import (
	calculateEstimate "github.com/m04kA/HRS-EstimateService/internal/usecase/calculate_estimate"
)

// HallLineResponse строка расчета по залу
type HallLineResponse struct {
	Name        string `json:"name"`
	PricePerDay int64  `json:"pricePerDay"`
	Days        int    `json:"days"`
	Subtotal    int64  `json:"subtotal"`
}

// RoomLineResponse строка расчета по типу номера
type RoomLineResponse struct {
	Name          string `json:"name"`
	WeekdayPrice  int64  `json:"weekdayPrice"`
	WeekendPrice  int64  `json:"weekendPrice"`
	Nights        int    `json:"nights"`
	Count         int    `json:"count"`
	WeekdayNights int    `json:"weekdayNights"`
	WeekendNights int    `json:"weekendNights"`
	Subtotal      int64  `json:"subtotal"`
}

// EstimateResponse HTTP response model с расчетом стоимости
type EstimateResponse struct {
	HallTotal    int64              `json:"hallTotal"`
	RoomTotal    int64              `json:"roomTotal"`
	GrandTotal   int64              `json:"grandTotal"`
	HasSelection bool               `json:"hasSelection"`
	Nights       int                `json:"nights"`
	Days         int                `json:"days"`
	RangeText    string             `json:"rangeText,omitempty"`
	Halls        []HallLineResponse `json:"halls"`
	Rooms        []RoomLineResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateEstimate.Response) *EstimateResponse {
	halls := make([]HallLineResponse, 0, len(resp.Halls))
	for _, line := range resp.Halls {
		halls = append(halls, HallLineResponse{
			Name:        line.Name,
			PricePerDay: line.PricePerDay,
			Days:        line.Days,
			Subtotal:    line.Subtotal,
		})
	}

	rooms := make([]RoomLineResponse, 0, len(resp.Rooms))
	for _, line := range resp.Rooms {
		rooms = append(rooms, RoomLineResponse{
			Name:          line.Name,
			WeekdayPrice:  line.WeekdayPrice,
			WeekendPrice:  line.WeekendPrice,
			Nights:        line.Nights,
			Count:         line.Count,
			WeekdayNights: line.WeekdayNights,
			WeekendNights: line.WeekendNights,
			Subtotal:      line.Subtotal,
		})
	}

	return &EstimateResponse{
		HallTotal:    resp.HallTotal,
		RoomTotal:    resp.RoomTotal,
		GrandTotal:   resp.GrandTotal,
		HasSelection: resp.HasSelection,
		Nights:       resp.Nights,
		Days:         resp.Days,
		RangeText:    resp.RangeText,
		Halls:        halls,
		Rooms:        rooms,
	}
}
