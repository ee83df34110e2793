package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий складских расходников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает список расходников с фильтрацией
// Поиск по подстроке имени/штрихкода/цвета/производителя, фильтр по
// категории, флаги zeroOnly/lowOnly по остатку.
func (r *Repository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"product_name",
		"category_name",
		"barcode",
		"qnt",
		"firma",
		"color",
		"last_item_opened",
	).
		From("products").
		OrderBy("product_name ASC")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"product_name": like},
			squirrel.ILike{"barcode": like},
			squirrel.ILike{"color": like},
			squirrel.ILike{"firma": like},
		})
	}
	if filter.Category != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_name": filter.Category})
	}

	// Фильтры по остатку
	switch {
	case filter.ZeroOnly && filter.LowOnly:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"qnt": []int{0, 1}})
	case filter.ZeroOnly:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"qnt": 0})
	case filter.LowOnly:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"qnt": 1})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var (
			p          domain.Product
			barcode    sql.NullString
			firma      sql.NullString
			color      sql.NullString
			lastOpened sql.NullTime
		)

		err := rows.Scan(&p.Name, &p.CategoryName, &barcode, &p.Quantity, &firma, &color, &lastOpened)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if barcode.Valid {
			p.Barcode = &barcode.String
		}
		if firma.Valid {
			p.Firma = &firma.String
		}
		if color.Valid {
			p.Color = &color.String
		}
		if lastOpened.Valid {
			p.LastItemOpened = &lastOpened.Time
		}

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// Create создает расходник
func (r *Repository) Create(ctx context.Context, p *domain.Product) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns("product_name", "category_name", "barcode", "qnt", "firma", "color").
		Values(p.Name, p.CategoryName, p.Barcode, p.Quantity, p.Firma, p.Color).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ProductUpdate частичное обновление полей расходника
// nil-поле означает "не менять"; пустая строка записывает NULL.
type ProductUpdate struct {
	ProductName  *string
	CategoryName *string
	Barcode      *string
	Color        *string
	Firma        *string
}

// Update обновляет поля расходника по текущему имени
func (r *Repository) Update(ctx context.Context, name string, upd ProductUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("products").
		Where(squirrel.Eq{"product_name": name})

	set := func(col string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			updateBuilder = updateBuilder.Set(col, nil)
			return
		}
		updateBuilder = updateBuilder.Set(col, *v)
	}

	set("product_name", upd.ProductName)
	set("category_name", upd.CategoryName)
	set("barcode", upd.Barcode)
	set("color", upd.Color)
	set("firma", upd.Firma)

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete удаляет расходник по имени
func (r *Repository) Delete(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("products").
		Where(squirrel.Eq{"product_name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// GetForUpdate получает расходник со строковой блокировкой (FOR UPDATE)
// Вызывается внутри транзакции изменения остатка.
func (r *Repository) GetForUpdate(ctx context.Context, name string) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("product_name", "qnt").
		From("products").
		Where(squirrel.Eq{"product_name": name})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Product
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.Name, &p.Quantity)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan product: %v", ErrScanRow, err)
	}

	return &p, nil
}

// SetQuantity устанавливает остаток расходника
func (r *Repository) SetQuantity(ctx context.Context, name string, qnt int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("qnt", qnt).
		Where(squirrel.Eq{"product_name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetQuantity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetQuantity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetQuantity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UseOne списывает одну единицу и отмечает дату вскрытия
func (r *Repository) UseOne(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("qnt", squirrel.Expr("qnt - 1")).
		Set("last_item_opened", squirrel.Expr("CURRENT_DATE")).
		Where(squirrel.Eq{"product_name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UseOne - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UseOne - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UseOne - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
