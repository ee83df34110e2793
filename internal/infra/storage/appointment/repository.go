package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Код ошибки PostgreSQL "unique_violation"
const pgUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"user_id",
	"work_date",
	"to_char(slot, 'HH24:MI')",
	"status",
	"notes",
	"inspo_img",
	"location",
	"paid_amount",
	"closed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись на приём
// Частичный уникальный индекс (work_date, slot) WHERE status <> 'canceled'
// страхует условное обновление реестра; его срабатывание маппится в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"user_id",
			"work_date",
			"slot",
			"status",
			"notes",
			"inspo_img",
			"location",
		).
		Values(
			appt.UserID,
			appt.WorkDate,
			appt.Slot.HMS(),
			appt.Status,
			appt.Notes,
			appt.InspoImg,
			appt.Location,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает запись по ID со строковой блокировкой (FOR UPDATE)
// Вызывается только внутри транзакции; сериализует конкурентные смены статуса
// одной и той же записи.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByUserID получает список записей пользователя
// Опционально фильтрует по статусу; сортировка: новые даты сверху,
// внутри даты - по времени слота.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("work_date DESC, slot ASC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetOpenAdminHolds получает открытые hold-записи на дату и время слота
// с блокировкой FOR UPDATE (вызывается внутри транзакции release).
func (r *Repository) GetOpenAdminHolds(ctx context.Context, date time.Time, slot types.TimeString) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"work_date": date,
			"slot":      slot.HMS(),
			"status":    domain.StatusOpen,
			"notes":     domain.AdminHoldNote,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenAdminHolds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenAdminHolds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Close закрывает запись: статус closed, сумма оплаты, отметка времени закрытия
func (r *Repository) Close(ctx context.Context, id int64, paidAmount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusClosed).
		Set("paid_amount", paidAmount).
		Set("closed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// MonthlyReport агрегирует записи по календарным месяцам за период [from, to]
// Выручка - сумма paid_amount по закрытым записям; границы периода
// месячные: from включительно, месяц после to не включается.
func (r *Repository) MonthlyReport(ctx context.Context, from, to time.Time) ([]*domain.MonthlyReportRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"EXTRACT(YEAR FROM work_date)::int AS y",
		"EXTRACT(MONTH FROM work_date)::int AS m",
		"COUNT(*) AS appts",
		"COALESCE(SUM(CASE WHEN status = 'closed' THEN paid_amount ELSE 0 END), 0) AS revenue",
	).
		From("appointments").
		Where(squirrel.GtOrEq{"work_date": from}).
		Where(squirrel.Lt{"work_date": to.AddDate(0, 1, 0)}).
		GroupBy("y", "m").
		OrderBy("y ASC", "m ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyReport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyReport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	report := make([]*domain.MonthlyReportRow, 0)
	for rows.Next() {
		var row domain.MonthlyReportRow
		if err := rows.Scan(&row.Year, &row.Month, &row.Appointments, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%w: MonthlyReport - scan row: %v", ErrScanRow, err)
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MonthlyReport - rows error: %v", ErrScanRow, err)
	}

	return report, nil
}

func scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var (
		appt       domain.Appointment
		slot       string
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
		closedAt   sql.NullTime
		paidAmount sql.NullFloat64
	)

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.WorkDate,
		&slot,
		&appt.Status,
		&appt.Notes,
		&appt.InspoImg,
		&appt.Location,
		&paidAmount,
		&closedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	fillAppointment(&appt, slot, paidAmount, closedAt, createdAt, updatedAt)
	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt       domain.Appointment
			slot       string
			createdAt  sql.NullTime
			updatedAt  sql.NullTime
			closedAt   sql.NullTime
			paidAmount sql.NullFloat64
		)

		err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.WorkDate,
			&slot,
			&appt.Status,
			&appt.Notes,
			&appt.InspoImg,
			&appt.Location,
			&paidAmount,
			&closedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		fillAppointment(&appt, slot, paidAmount, closedAt, createdAt, updatedAt)
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func fillAppointment(appt *domain.Appointment, slot string, paidAmount sql.NullFloat64, closedAt, createdAt, updatedAt sql.NullTime) {
	appt.Slot = types.TimeString(slot).HM()
	if paidAmount.Valid {
		appt.PaidAmount = &paidAmount.Float64
	}
	if closedAt.Valid {
		appt.ClosedAt = &closedAt.Time
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time
}
