package products

import (
	"github.com/velumi/NailStudio-Backend/internal/domain"
	productRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/product"
)

// CreateProductRequest HTTP request model
type CreateProductRequest struct {
	ProductName  string  `json:"productName"`
	CategoryName string  `json:"categoryName"`
	Barcode      *string `json:"barcode,omitempty"`
	Quantity     int     `json:"qnt"`
	Firma        *string `json:"firma,omitempty"`
	Color        *string `json:"color,omitempty"`
}

// UpdateProductRequest HTTP request model
// Пустая строка в поле означает сброс значения в NULL
type UpdateProductRequest struct {
	ProductName  *string `json:"productName,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
	Barcode      *string `json:"barcode,omitempty"`
	Color        *string `json:"color,omitempty"`
	Firma        *string `json:"firma,omitempty"`
}

// AdjustProductRequest HTTP request model
type AdjustProductRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse HTTP response model
type ProductResponse struct {
	ProductName    string  `json:"productName"`
	CategoryName   string  `json:"categoryName"`
	Barcode        *string `json:"barcode,omitempty"`
	Quantity       int     `json:"qnt"`
	Firma          *string `json:"firma,omitempty"`
	Color          *string `json:"color,omitempty"`
	LastItemOpened *string `json:"lastItemOpened,omitempty"`
}

// ProductListResponse HTTP response model для списка расходников
type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
}

// AdjustProductResponse HTTP response model с новым остатком
type AdjustProductResponse struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"qnt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		Name:         r.ProductName,
		CategoryName: r.CategoryName,
		Barcode:      r.Barcode,
		Quantity:     r.Quantity,
		Firma:        r.Firma,
		Color:        r.Color,
	}
}

// ToRepoUpdate конвертирует HTTP запрос в модель частичного обновления
func (r *UpdateProductRequest) ToRepoUpdate() productRepo.ProductUpdate {
	return productRepo.ProductUpdate{
		ProductName:  r.ProductName,
		CategoryName: r.CategoryName,
		Barcode:      r.Barcode,
		Color:        r.Color,
		Firma:        r.Firma,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(p *domain.Product) *ProductResponse {
	resp := &ProductResponse{
		ProductName:  p.Name,
		CategoryName: p.CategoryName,
		Barcode:      p.Barcode,
		Quantity:     p.Quantity,
		Firma:        p.Firma,
		Color:        p.Color,
	}
	if p.LastItemOpened != nil {
		opened := p.LastItemOpened.Format(domain.DateFormat)
		resp.LastItemOpened = &opened
	}
	return resp
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(products []*domain.Product) *ProductListResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromDomain(p))
	}
	return &ProductListResponse{Products: out}
}
