package slottimes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Repository репозиторий конфигурации времён слотов (таблица slot_times)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию пяти времён по id
func (r *Repository) Get(ctx context.Context, id int64) (*domain.SlotTimes, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"first_app",
		"second_app",
		"third_app",
		"fourth_app",
		"fifth_app",
		"created_at",
		"updated_at",
	).
		From("slot_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		st        domain.SlotTimes
		raw       [domain.SlotsPerDay]string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&st.ID,
		&raw[0], &raw[1], &raw[2], &raw[3], &raw[4],
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan slot times: %v", ErrScanRow, err)
	}

	// Колонки типа TIME приходят как "HH:MM:SS" - усекаем до минут
	for i, s := range raw {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: Get - parse time %q: %v", ErrScanRow, s, err)
		}
		st.Times[i] = t
	}

	st.CreatedAt = createdAt.Time
	st.UpdatedAt = updatedAt.Time

	return &st, nil
}

// Upsert создает или обновляет конфигурацию времён слотов по id
func (r *Repository) Upsert(ctx context.Context, st *domain.SlotTimes) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_times").
		Columns("id", "first_app", "second_app", "third_app", "fourth_app", "fifth_app").
		Values(
			st.ID,
			st.Times[0].HMS(),
			st.Times[1].HMS(),
			st.Times[2].HMS(),
			st.Times[3].HMS(),
			st.Times[4].HMS(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			first_app = EXCLUDED.first_app,
			second_app = EXCLUDED.second_app,
			third_app = EXCLUDED.third_app,
			fourth_app = EXCLUDED.fourth_app,
			fifth_app = EXCLUDED.fifth_app,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
