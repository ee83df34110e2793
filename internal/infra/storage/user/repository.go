package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/dbmetrics"
	"github.com/velumi/NailStudio-Backend/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var userColumns = []string{
	"user_id",
	"user_name",
	"first_name",
	"last_name",
	"phone_number",
	"date_of_birth",
	"password_hash",
	"role",
	"created_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
// Нарушения уникальности маппятся по имени ограничения в три раздельные ошибки.
func (r *Repository) Create(ctx context.Context, u *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"user_id",
			"user_name",
			"first_name",
			"last_name",
			"phone_number",
			"date_of_birth",
			"password_hash",
			"role",
		).
		Values(
			u.ID,
			u.UserName,
			u.FirstName,
			u.LastName,
			u.PhoneNumber,
			u.DateOfBirth,
			u.PasswordHash,
			u.Role,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return mapDuplicate(pqErr)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func mapDuplicate(pqErr *pq.Error) error {
	switch {
	case strings.Contains(pqErr.Constraint, "pkey"):
		return ErrDuplicateID
	case strings.Contains(pqErr.Constraint, "user_name"):
		return ErrDuplicateUserName
	case strings.Contains(pqErr.Constraint, "phone"):
		return ErrDuplicatePhone
	default:
		return ErrDuplicateUserName
	}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByLogin получает пользователя по имени или номеру телефона
func (r *Repository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"user_name": login},
			squirrel.Eq{"phone_number": login},
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLogin - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByLogin")
}

func (r *Repository) scanUser(row *sql.Row, method string) (*domain.User, error) {
	var (
		u           domain.User
		phone       sql.NullString
		dateOfBirth sql.NullTime
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.FirstName,
		&u.LastName,
		&phone,
		&dateOfBirth,
		&u.PasswordHash,
		&u.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, method, err)
	}

	if phone.Valid {
		u.PhoneNumber = &phone.String
	}
	if dateOfBirth.Valid {
		u.DateOfBirth = &dateOfBirth.Time
	}
	u.CreatedAt = createdAt.Time

	return &u, nil
}
