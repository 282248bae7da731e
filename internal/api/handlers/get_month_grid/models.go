package get_month_grid

import (
	getMonthGrid "github.com/m04kA/HRS-EstimateService/internal/usecase/get_month_grid"
)

// MonthGridResponse сетка одного месяца
type MonthGridResponse struct {
	Year     int   `json:"year"`
	Month    int   `json:"month"`
	Leading  []int `json:"leading"`
	Current  []int `json:"current"`
	Trailing []int `json:"trailing"`
}

// CalendarResponse HTTP response model: два месяца рядом
type CalendarResponse struct {
	Primary   MonthGridResponse `json:"primary"`
	Secondary MonthGridResponse `json:"secondary"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthGrid.Response) *CalendarResponse {
	return &CalendarResponse{
		Primary:   toGridResponse(resp.Primary),
		Secondary: toGridResponse(resp.Secondary),
	}
}

func toGridResponse(g getMonthGrid.MonthGrid) MonthGridResponse {
	return MonthGridResponse{
		Year:     g.Year,
		Month:    g.Month,
		Leading:  g.Leading,
		Current:  g.Current,
		Trailing: g.Trailing,
	}
}
