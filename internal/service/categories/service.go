package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	categoryRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/category"
)

var (
	// ErrCategoryExists возвращается при создании уже существующей категории
	ErrCategoryExists = errors.New("categories: category already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("categories: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("categories: internal error")
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис категорий расходников
type Service struct {
	repo   CategoryRepository
	logger Logger
}

// NewService создает новый сервис категорий
func NewService(repo CategoryRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает все категории в алфавитном порядке
func (s *Service) List(ctx context.Context) ([]string, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Categories.List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return categories, nil
}

// Create создает категорию
func (s *Service) Create(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, name); err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryExists) {
			s.logger.Warn("Categories.Create: %q already exists", name)
			return ErrCategoryExists
		}
		s.logger.Error("Categories.Create: repository error for %q: %v", name, err)
		return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Categories.Create: %q created", name)
	return nil
}
