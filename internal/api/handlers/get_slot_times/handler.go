package get_slot_times

import (
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/domain"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
)

const msgConfigMissing = "времена слотов не настроены"

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

// Handle GET /api/v1/slot-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Load(r.Context(), domain.DefaultSlotTimesID)
	if err != nil {
		if errors.Is(err, slottimesService.ErrConfigNotFound) {
			h.logger.Warn("GET /slot-times - Config missing")
			handlers.RespondNotFound(w, msgConfigMissing)
			return
		}
		h.logger.Error("GET /slot-times - Failed to load config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
