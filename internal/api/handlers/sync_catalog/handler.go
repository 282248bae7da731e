package sync_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/HRS-EstimateService/internal/api/handlers"
	catalogService "github.com/m04kA/HRS-EstimateService/internal/service/catalog"
)

const (
	msgContentUnavailable = "сервис контента недоступен, синхронизация невозможна"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/catalog/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SyncFromContent(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrContentUnavailable):
			h.logger.Warn("POST /catalog/sync - Content service unavailable")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgContentUnavailable)

		default:
			h.logger.Error("POST /catalog/sync - Failed to sync catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /catalog/sync - Catalog synced: halls=%d, rooms=%d",
		result.HallsSynced, result.RoomsSynced)
	handlers.RespondJSON(w, http.StatusOK, result)
}
