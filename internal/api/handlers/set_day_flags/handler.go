package set_day_flags

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/api/middleware"
	"github.com/velumi/NailStudio-Backend/internal/domain"
	setDayFlags "github.com/velumi/NailStudio-Backend/internal/usecase/set_day_flags"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "операция доступна только менеджеру"
	msgConfigMissing      = "времена слотов не настроены"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase SetDayFlagsUseCase
	logger  Logger
}

func NewHandler(useCase SetDayFlagsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/days/{date}/flags
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgForbidden)
		return
	}

	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PATCH /days/{date}/flags - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetDayFlagsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /days/%s/flags - Invalid request body: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(managerID, date))
	if err != nil {
		switch {
		case errors.Is(err, setDayFlags.ErrForbidden):
			h.logger.Warn("PATCH /days/%s/flags - User %d is not a manager", rawDate, managerID)
			handlers.RespondError(w, http.StatusForbidden, msgForbidden)

		case errors.Is(err, setDayFlags.ErrConfigMissing):
			h.logger.Warn("PATCH /days/%s/flags - Slot times config missing", rawDate)
			handlers.RespondError(w, http.StatusConflict, msgConfigMissing)

		case errors.Is(err, setDayFlags.ErrInvalidInput):
			h.logger.Warn("PATCH /days/%s/flags - Invalid input: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /days/%s/flags - Failed to set flags: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /days/%s/flags - Flags updated by manager %d", rawDate, managerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
