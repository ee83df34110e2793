package products

import (
	"context"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	productRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/product"
)

// ProductRepository интерфейс репозитория расходников
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, name string, upd productRepo.ProductUpdate) error
	Delete(ctx context.Context, name string) error
	GetForUpdate(ctx context.Context, name string) (*domain.Product, error)
	SetQuantity(ctx context.Context, name string, qnt int) error
	UseOne(ctx context.Context, name string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
