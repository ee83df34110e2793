package create_appointment

import (
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	createAppointment "github.com/velumi/NailStudio-Backend/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgConfigMissing      = "времена слотов не настроены"
	msgInvalidTime        = "время не совпадает ни с одним слотом"
	msgSlotTaken          = "выбранный слот уже занят"
	msgSlotClosed         = "слот закрыт администратором"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, date=%s, time=%s",
				req.UserID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSlotClosed):
			h.logger.Warn("POST /appointments - Slot closed: user_id=%d, date=%s, time=%s",
				req.UserID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusForbidden, msgSlotClosed)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid slot time: %s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrConfigMissing):
			h.logger.Warn("POST /appointments - Slot times config missing")
			handlers.RespondError(w, http.StatusConflict, msgConfigMissing)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v",
				req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, user_id=%d", result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
