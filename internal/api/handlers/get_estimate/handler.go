package get_estimate

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HRS-EstimateService/internal/api/handlers"
	"github.com/m04kA/HRS-EstimateService/internal/api/middleware"
	calculateEstimate "github.com/m04kA/HRS-EstimateService/internal/usecase/calculate_estimate"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidSessionID = "некорректный ID сессии"
	msgNotFound         = "сессия не найдена"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	useCase CalculateEstimateUseCase
	logger  Logger
}

func NewHandler(useCase CalculateEstimateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /sessions/{id}/estimate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculateEstimate.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculateEstimate.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/estimate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calculateEstimate.ErrAccessDenied):
			h.logger.Warn("GET /sessions/{id}/estimate - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calculateEstimate.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/estimate - Invalid input: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidSessionID)

		default:
			h.logger.Error("GET /sessions/{id}/estimate - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/estimate - Estimate calculated: session_id=%s, total=%d",
		sessionID, result.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
