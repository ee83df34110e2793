package refresh_slot_times

import (
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
)

type Handler struct {
	service SlotTimesService
	logger  Logger
}

func NewHandler(service SlotTimesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slot-times/refresh
// Сбрасывает кеш конфигурации, следующее чтение пойдет в БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Invalidate()
	h.logger.Info("POST /slot-times/refresh - Cache invalidated")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
