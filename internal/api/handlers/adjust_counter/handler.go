package adjust_counter

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HRS-EstimateService/internal/api/handlers"
	"github.com/m04kA/HRS-EstimateService/internal/api/middleware"
	adjustCounter "github.com/m04kA/HRS-EstimateService/internal/usecase/adjust_counter"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCounter     = "некорректный тип счетчика или операции"
	msgItemNotFound       = "позиция каталога не найдена"
	msgNotFound           = "сессия не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase AdjustCounterUseCase
	logger  Logger
}

func NewHandler(useCase AdjustCounterUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/counters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/counters - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AdjustCounterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/counters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, userID))
	if err != nil {
		switch {
		case errors.Is(err, adjustCounter.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/counters - Invalid input: session_id=%s, kind=%s, op=%s",
				sessionID, req.Kind, req.Op)
			handlers.RespondBadRequest(w, msgInvalidCounter)

		case errors.Is(err, adjustCounter.ErrItemNotFound):
			h.logger.Warn("POST /sessions/{id}/counters - Item not found: session_id=%s, item=%s", sessionID, req.ItemName)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, adjustCounter.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/counters - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, adjustCounter.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/counters - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /sessions/{id}/counters - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
