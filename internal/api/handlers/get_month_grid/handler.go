package get_month_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HRS-EstimateService/internal/api/handlers"
	getMonthGrid "github.com/m04kA/HRS-EstimateService/internal/usecase/get_month_grid"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month"
)

type Handler struct {
	useCase GetMonthGridUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2025&month=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthGrid.Request{
		Year:  year,
		Month: month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthGrid.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build grid: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
