package apply_date_range

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HRS-EstimateService/internal/api/handlers"
	"github.com/m04kA/HRS-EstimateService/internal/api/middleware"
	applyDateRange "github.com/m04kA/HRS-EstimateService/internal/usecase/apply_date_range"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidSessionID = "некорректный ID сессии"
	msgIncompleteRange  = "диапазон дат не выбран полностью"
	msgNotFound         = "сессия не найдена"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	useCase ApplyDateRangeUseCase
	logger  Logger
}

func NewHandler(useCase ApplyDateRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/apply-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/apply-dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyDateRange.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, applyDateRange.ErrIncompleteRange):
			h.logger.Warn("POST /sessions/{id}/apply-dates - Incomplete range: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteRange)

		case errors.Is(err, applyDateRange.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/apply-dates - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		case errors.Is(err, applyDateRange.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/apply-dates - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, applyDateRange.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/apply-dates - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /sessions/{id}/apply-dates - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/apply-dates - Range applied: session_id=%s, nights=%d", sessionID, result.Nights)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
