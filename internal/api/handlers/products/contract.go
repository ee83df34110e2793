package products

import (
	"context"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	productRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/product"
)

type ProductService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, name string, upd productRepo.ProductUpdate) error
	Delete(ctx context.Context, name string) error
	Adjust(ctx context.Context, name string, delta int) (int, error)
	Use(ctx context.Context, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
