package workday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
)

// Repository репозиторий реестра занятости слотов (таблица workday)
// Одна строка на дату, пять текстовых ячеек с именами занявших.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория реестра занятости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureDay лениво создает строку реестра на дату (идемпотентно)
func (r *Repository) EnsureDay(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("workday").
		Columns("work_date").
		Values(date).
		Suffix("ON CONFLICT (work_date) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ClaimSlot условно занимает ячейку слота на дату
//
// Единственный механизм защиты от двойного бронирования: одно атомарное
// условное UPDATE с предусловием "ячейка пуста". Из двух конкурентных
// попыток на один (date, slot) строковая блокировка БД пропустит первую,
// вторая увидит непустую ячейку и получит ErrSlotTaken.
func (r *Repository) ClaimSlot(ctx context.Context, date time.Time, col domain.SlotColumn, occupant string) error {
	if !col.IsValid() {
		return fmt.Errorf("%w: ClaimSlot - %q", ErrInvalidSlot, col)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Имя колонки проверено по белому списку domain.SlotColumns,
	// интерполяция в текст запроса безопасна.
	query, args, err := psqlbuilder.Update("workday").
		Set(string(col), occupant).
		Where(squirrel.Eq{"work_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{string(col): nil},
			squirrel.Eq{string(col): ""},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClaimSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ClaimSlot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ClaimSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected != 1 {
		return ErrSlotTaken
	}

	return nil
}

// ClearSlot безусловно освобождает ячейку слота на дату
// Используется при отмене записи клиента.
func (r *Repository) ClearSlot(ctx context.Context, date time.Time, col domain.SlotColumn) error {
	if !col.IsValid() {
		return fmt.Errorf("%w: ClearSlot - %q", ErrInvalidSlot, col)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("workday").
		Set(string(col), nil).
		Where(squirrel.Eq{"work_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ClearSlot - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearSlot - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ClearSlotIfOccupant освобождает ячейку, только если в ней ожидаемое имя
// (compare-and-clear). Используется при снятии административной блокировки:
// ячейку, переиспользованную реальной записью, трогать нельзя.
// Возвращает true, если ячейка была очищена.
func (r *Repository) ClearSlotIfOccupant(ctx context.Context, date time.Time, col domain.SlotColumn, occupant string) (bool, error) {
	if !col.IsValid() {
		return false, fmt.Errorf("%w: ClearSlotIfOccupant - %q", ErrInvalidSlot, col)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("workday").
		Set(string(col), nil).
		Where(squirrel.Eq{"work_date": date}).
		Where(squirrel.Eq{string(col): occupant}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ClearSlotIfOccupant - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ClearSlotIfOccupant - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ClearSlotIfOccupant - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// Get читает строку реестра на дату
// Возвращает ErrDayNotFound, если до этой даты еще никто не дотрагивался.
func (r *Repository) Get(ctx context.Context, date time.Time) (*domain.Workday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"work_date",
		"first_app",
		"second_app",
		"third_app",
		"fourth_app",
		"fifth_app",
	).
		From("workday").
		Where(squirrel.Eq{"work_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		day   domain.Workday
		cells [domain.SlotsPerDay]sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.Date,
		&cells[0], &cells[1], &cells[2], &cells[3], &cells[4],
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan workday: %v", ErrScanRow, err)
	}

	day.Cells = make(map[domain.SlotColumn]string, domain.SlotsPerDay)
	for i, col := range domain.SlotColumns {
		day.Cells[col] = cells[i].String
	}

	return &day, nil
}
