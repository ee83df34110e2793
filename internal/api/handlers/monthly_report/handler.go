package monthly_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/api/middleware"
	"github.com/velumi/NailStudio-Backend/internal/domain"
	reportsService "github.com/velumi/NailStudio-Backend/internal/service/reports"
)

const (
	msgForbidden    = "отчёты доступны только менеджеру"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата начала позже даты окончания"
)

type Handler struct {
	service ReportService
	users   UserService
	logger  Logger
}

func NewHandler(service ReportService, users UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		users:   users,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/monthly?from=YYYY-MM-DD&to=YYYY-MM-DD
// Без параметров берется окно в двенадцать месяцев
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgForbidden)
		return
	}

	role, err := h.users.GetRole(r.Context(), userID)
	if err != nil || role != domain.RoleManager {
		h.logger.Warn("GET /reports/monthly - User %d is not a manager", userID)
		handlers.RespondError(w, http.StatusForbidden, msgForbidden)
		return
	}

	var from, to *time.Time
	q := r.URL.Query()
	if raw := q.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reports/monthly - Invalid from date %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = &parsed
	}
	if raw := q.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reports/monthly - Invalid to date %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to = &parsed
	}

	result, err := h.service.Monthly(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, reportsService.ErrInvalidRange) {
			h.logger.Warn("GET /reports/monthly - Invalid range")
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /reports/monthly - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
