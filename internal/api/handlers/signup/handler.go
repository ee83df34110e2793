package signup

import (
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOfBirth = "некорректный формат даты рождения, ожидается YYYY-MM-DD"
	msgDuplicateID        = "пользователь с таким идентификатором уже существует"
	msgDuplicateUserName  = "имя пользователя уже занято"
	msgDuplicatePhone     = "номер телефона уже занят"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /auth/signup - Invalid date of birth: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOfBirth)
		return
	}

	if err := h.service.Signup(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, usersService.ErrDuplicateID):
			h.logger.Warn("POST /auth/signup - Duplicate user id %d", req.UserID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateID)

		case errors.Is(err, usersService.ErrDuplicateUserName):
			h.logger.Warn("POST /auth/signup - Duplicate user name %q", req.UserName)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateUserName)

		case errors.Is(err, usersService.ErrDuplicatePhone):
			h.logger.Warn("POST /auth/signup - Duplicate phone for user %d", req.UserID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePhone)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/signup - Failed to sign up user %d: %v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - User %d registered", req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
