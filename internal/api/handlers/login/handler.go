package login

import (
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgInvalidInput       = "некорректные данные запроса"
)

// LoginRequest HTTP request model
// Login - имя пользователя или номер телефона
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for %q", req.Login)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/login - Failed to log in %q: %v", req.Login, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User %d logged in", user.UserID)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		UserID:   user.UserID,
		UserName: user.UserName,
		Role:     user.Role,
	})
}
