package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий категорий расходников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает имена всех категорий в алфавитном порядке
func (r *Repository) List(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("category_name").
		From("categories").
		OrderBy("category_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// Create создает категорию
func (r *Repository) Create(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("categories").
		Columns("category_name").
		Values(name).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrCategoryExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
