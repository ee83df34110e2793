package get_user_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	apptService "github.com/velumi/NailStudio-Backend/internal/service/appointments"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgInvalidStatus = "некорректный фильтр статуса"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/appointments?status=open|closed|canceled|all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["userId"]
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{userId}/appointments - Invalid user id %q", rawID)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	statusFilter := r.URL.Query().Get("status")

	appts, err := h.service.GetUserAppointments(r.Context(), userID, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, apptService.ErrInvalidStatus):
			h.logger.Warn("GET /users/%d/appointments - Invalid status filter %q", userID, statusFilter)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, apptService.ErrInvalidInput):
			h.logger.Warn("GET /users/%d/appointments - Invalid input: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/%d/appointments - Failed to get appointments: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(appts))
}
