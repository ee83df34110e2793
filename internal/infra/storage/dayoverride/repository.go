package dayoverride

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
)

// Repository репозиторий флагов доступности слотов (таблица day_overrides)
// Отсутствие строки эквивалентно "все слоты открыты"; дефолты
// материализуются при первом чтении через EnsureDefaults.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория флагов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает флаги на дату
func (r *Repository) Get(ctx context.Context, date time.Time) (*domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"work_date",
		"first_app",
		"second_app",
		"third_app",
		"fourth_app",
		"fifth_app",
	).
		From("day_overrides").
		Where(squirrel.Eq{"work_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		override domain.DayOverride
		flags    [domain.SlotsPerDay]bool
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.Date,
		&flags[0], &flags[1], &flags[2], &flags[3], &flags[4],
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan day override: %v", ErrScanRow, err)
	}

	override.Open = make(map[domain.SlotColumn]bool, domain.SlotsPerDay)
	for i, col := range domain.SlotColumns {
		override.Open[col] = flags[i]
	}

	return &override, nil
}

// EnsureDefaults читает флаги на дату, материализуя строку с дефолтами
// (все открыты), если её еще нет. Идемпотентна: повторный вызов не создает
// вторую строку и возвращает тот же результат.
func (r *Repository) EnsureDefaults(ctx context.Context, date time.Time) (*domain.DayOverride, error) {
	override, err := r.Get(ctx, date)
	if err == nil {
		return override, nil
	}
	if !errors.Is(err, ErrOverrideNotFound) {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_overrides").
		Columns("work_date").
		Values(date).
		Suffix("ON CONFLICT (work_date) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EnsureDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: EnsureDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return domain.NewDefaultDayOverride(date), nil
}

// Upsert создает или обновляет флаги на дату
func (r *Repository) Upsert(ctx context.Context, override *domain.DayOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_overrides").
		Columns("work_date", "first_app", "second_app", "third_app", "fourth_app", "fifth_app").
		Values(
			override.Date,
			override.Open[domain.SlotFirst],
			override.Open[domain.SlotSecond],
			override.Open[domain.SlotThird],
			override.Open[domain.SlotFourth],
			override.Open[domain.SlotFifth],
		).
		Suffix(`ON CONFLICT (work_date) DO UPDATE SET
			first_app = EXCLUDED.first_app,
			second_app = EXCLUDED.second_app,
			third_app = EXCLUDED.third_app,
			fourth_app = EXCLUDED.fourth_app,
			fifth_app = EXCLUDED.fifth_app`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
