package categories

import (
	"context"
	"errors"
	"net/http"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	categoriesService "github.com/velumi/NailStudio-Backend/internal/service/categories"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCategoryExists     = "категория уже существует"
	msgInvalidInput       = "некорректные данные запроса"
)

type CategoryService interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateCategoryRequest HTTP request model
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoriesResponse HTTP response model
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CategoriesResponse{Categories: categories})
}

// Create POST /api/v1/categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Create(r.Context(), req.Name); err != nil {
		switch {
		case errors.Is(err, categoriesService.ErrCategoryExists):
			h.logger.Warn("POST /categories - Category %q already exists", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgCategoryExists)

		case errors.Is(err, categoriesService.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /categories - Failed to create category %q: %v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category %q created", req.Name)
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
