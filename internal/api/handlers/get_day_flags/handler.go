package get_day_flags

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	overrideRepo OverrideRepository
	logger       Logger
}

func NewHandler(overrideRepo OverrideRepository, logger Logger) *Handler {
	return &Handler{
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// Handle GET /api/v1/days/{date}/flags
// Отсутствующая строка материализуется дефолтами (все открыты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /days/{date}/flags - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	override, err := h.overrideRepo.EnsureDefaults(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /days/%s/flags - Failed to get flags: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(override))
}
