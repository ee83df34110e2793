package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	productRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/product"
)

// Service сервис складского учёта расходников
type Service struct {
	repo      ProductRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый сервис расходников
func NewService(repo ProductRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{repo: repo, txManager: txManager, logger: logger}
}

// List получает список расходников с фильтрацией
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Products.List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// Create создает расходник
func (s *Service) Create(ctx context.Context, p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.CategoryName = strings.TrimSpace(p.CategoryName)

	if p.Name == "" || p.CategoryName == "" {
		return fmt.Errorf("%w: productName and categoryName are required", ErrInvalidInput)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: qnt must be a non-negative integer", ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, productRepo.ErrDuplicate) {
			s.logger.Warn("Products.Create: duplicate %q", p.Name)
			return ErrDuplicate
		}
		s.logger.Error("Products.Create: repository error for %q: %v", p.Name, err)
		return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Products.Create: %q created", p.Name)
	return nil
}

// Update частично обновляет поля расходника по текущему имени
func (s *Service) Update(ctx context.Context, name string, upd productRepo.ProductUpdate) error {
	if upd.ProductName == nil && upd.CategoryName == nil && upd.Barcode == nil &&
		upd.Color == nil && upd.Firma == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	err := s.repo.Update(ctx, name, upd)
	if err != nil {
		switch {
		case errors.Is(err, productRepo.ErrProductNotFound):
			return ErrProductNotFound
		case errors.Is(err, productRepo.ErrDuplicate):
			s.logger.Warn("Products.Update: duplicate on rename of %q", name)
			return ErrDuplicate
		default:
			s.logger.Error("Products.Update: repository error for %q: %v", name, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	return nil
}

// Delete удаляет расходник
func (s *Service) Delete(ctx context.Context, name string) error {
	err := s.repo.Delete(ctx, name)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error("Products.Delete: repository error for %q: %v", name, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Products.Delete: %q deleted", name)
	return nil
}

// Adjust изменяет остаток расходника на delta (положительную или отрицательную)
// Чтение остатка и запись идут в одной транзакции под FOR UPDATE;
// уход остатка в минус отклоняется.
func (s *Service) Adjust(ctx context.Context, name string, delta int) (int, error) {
	if delta == 0 {
		return 0, fmt.Errorf("%w: delta must be a non-zero integer", ErrInvalidInput)
	}

	var newQuantity int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetForUpdate(txCtx, name)
		if err != nil {
			if errors.Is(err, productRepo.ErrProductNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("%w: Adjust - get product: %v", ErrInternal, err)
		}

		newQuantity = p.Quantity + delta
		if newQuantity < 0 {
			return ErrNegativeQuantity
		}

		if err := s.repo.SetQuantity(txCtx, name, newQuantity); err != nil {
			return fmt.Errorf("%w: Adjust - set quantity: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrProductNotFound) && !errors.Is(err, ErrNegativeQuantity) {
			s.logger.Error("Products.Adjust: %q delta=%d: %v", name, delta, err)
		}
		return 0, err
	}

	s.logger.Info("Products.Adjust: %q delta=%d, qnt=%d", name, delta, newQuantity)
	return newQuantity, nil
}

// Use списывает одну единицу расходника и отмечает дату вскрытия
func (s *Service) Use(ctx context.Context, name string) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetForUpdate(txCtx, name)
		if err != nil {
			if errors.Is(err, productRepo.ErrProductNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("%w: Use - get product: %v", ErrInternal, err)
		}

		if p.IsOutOfStock() {
			return ErrOutOfStock
		}

		if err := s.repo.UseOne(txCtx, name); err != nil {
			return fmt.Errorf("%w: Use - decrement: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrProductNotFound) && !errors.Is(err, ErrOutOfStock) {
			s.logger.Error("Products.Use: %q: %v", name, err)
		}
		return err
	}

	s.logger.Info("Products.Use: %q used, one unit opened", name)
	return nil
}
