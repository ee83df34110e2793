package update_slot_times

import (
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/api/middleware"
	"github.com/velumi/NailStudio-Backend/internal/domain"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "операция доступна только менеджеру"
	msgWrongCount         = "ожидается ровно пять времён"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgDuplicateTime      = "времена слотов должны быть различны"
)

type Handler struct {
	service SlotTimesService
	users   UserService
	logger  Logger
}

func NewHandler(service SlotTimesService, users UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		users:   users,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slot-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgForbidden)
		return
	}

	role, err := h.users.GetRole(r.Context(), userID)
	if err != nil || role != domain.RoleManager {
		h.logger.Warn("PUT /slot-times - User %d is not a manager", userID)
		handlers.RespondError(w, http.StatusForbidden, msgForbidden)
		return
	}

	var req UpdateSlotTimesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slot-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Times) != domain.SlotsPerDay {
		h.logger.Warn("PUT /slot-times - Expected %d times, got %d", domain.SlotsPerDay, len(req.Times))
		handlers.RespondBadRequest(w, msgWrongCount)
		return
	}

	var raw [domain.SlotsPerDay]string
	copy(raw[:], req.Times)

	cfg, err := h.service.Save(r.Context(), domain.DefaultSlotTimesID, raw)
	if err != nil {
		switch {
		case errors.Is(err, slottimesService.ErrInvalidTime):
			h.logger.Warn("PUT /slot-times - Invalid time format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, slottimesService.ErrDuplicateTime):
			h.logger.Warn("PUT /slot-times - Duplicate times")
			handlers.RespondBadRequest(w, msgDuplicateTime)

		default:
			h.logger.Error("PUT /slot-times - Failed to save config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slot-times - Config updated by manager %d", userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(cfg))
}
