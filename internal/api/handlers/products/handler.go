package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
	"github.com/velumi/NailStudio-Backend/internal/domain"
	productsService "github.com/velumi/NailStudio-Backend/internal/service/products"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProductNotFound    = "расходник не найден"
	msgDuplicate          = "расходник с таким именем или штрихкодом уже существует"
	msgNegativeQuantity   = "остаток не может стать отрицательным"
	msgOutOfStock         = "расходник закончился"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/products?search=&category=&zero=&low=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ProductFilter{}
	if search := q.Get("search"); search != "" {
		filter.Search = search
	}
	if category := q.Get("category"); category != "" {
		filter.Category = category
	}
	filter.ZeroOnly, _ = strconv.ParseBool(q.Get("zero"))
	filter.LowOnly, _ = strconv.ParseBool(q.Get("low"))

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(products))
}

// Create POST /api/v1/products
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Create(r.Context(), req.ToDomain()); err != nil {
		switch {
		case errors.Is(err, productsService.ErrDuplicate):
			h.logger.Warn("POST /products - Duplicate product %q", req.ProductName)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, productsService.ErrInvalidInput):
			h.logger.Warn("POST /products - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /products - Failed to create product %q: %v", req.ProductName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products - Product %q created", req.ProductName)
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// Update PUT /api/v1/products/{name}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req UpdateProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{name} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), name, req.ToRepoUpdate()); err != nil {
		switch {
		case errors.Is(err, productsService.ErrProductNotFound):
			h.logger.Warn("PUT /products/%s - Product not found", name)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, productsService.ErrDuplicate):
			h.logger.Warn("PUT /products/%s - Duplicate name or barcode", name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		case errors.Is(err, productsService.ErrInvalidInput):
			h.logger.Warn("PUT /products/%s - Invalid input: %v", name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /products/%s - Failed to update product: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /products/%s - Product updated", name)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete DELETE /api/v1/products/{name}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.Delete(r.Context(), name); err != nil {
		if errors.Is(err, productsService.ErrProductNotFound) {
			h.logger.Warn("DELETE /products/%s - Product not found", name)
			handlers.RespondNotFound(w, msgProductNotFound)
			return
		}
		h.logger.Error("DELETE /products/%s - Failed to delete product: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /products/%s - Product deleted", name)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Adjust PATCH /api/v1/products/{name}/quantity
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req AdjustProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /products/{name}/quantity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newQuantity, err := h.service.Adjust(r.Context(), name, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, productsService.ErrProductNotFound):
			h.logger.Warn("PATCH /products/%s/quantity - Product not found", name)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, productsService.ErrNegativeQuantity):
			h.logger.Warn("PATCH /products/%s/quantity - Negative quantity rejected", name)
			handlers.RespondError(w, http.StatusConflict, msgNegativeQuantity)

		case errors.Is(err, productsService.ErrInvalidInput):
			h.logger.Warn("PATCH /products/%s/quantity - Invalid input: %v", name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /products/%s/quantity - Failed to adjust: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AdjustProductResponse{
		ProductName: name,
		Quantity:    newQuantity,
	})
}

// Use POST /api/v1/products/{name}/use
func (h *Handler) Use(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.Use(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, productsService.ErrProductNotFound):
			h.logger.Warn("POST /products/%s/use - Product not found", name)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, productsService.ErrOutOfStock):
			h.logger.Warn("POST /products/%s/use - Out of stock", name)
			handlers.RespondError(w, http.StatusConflict, msgOutOfStock)

		default:
			h.logger.Error("POST /products/%s/use - Failed to use product: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products/%s/use - One unit used", name)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
