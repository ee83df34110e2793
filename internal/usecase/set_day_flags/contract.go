package set_day_flags

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// SlotTimesService интерфейс сервиса конфигурации времён слотов
type SlotTimesService interface {
	Load(ctx context.Context, id int64) (*domain.SlotTimes, error)
}

// OverrideRepository интерфейс репозитория флагов доступности
type OverrideRepository interface {
	EnsureDefaults(ctx context.Context, date time.Time) (*domain.DayOverride, error)
	Upsert(ctx context.Context, override *domain.DayOverride) error
}

// WorkdayRepository интерфейс репозитория реестра занятости
type WorkdayRepository interface {
	EnsureDay(ctx context.Context, date time.Time) error
	ClaimSlot(ctx context.Context, date time.Time, col domain.SlotColumn, occupant string) error
	ClearSlotIfOccupant(ctx context.Context, date time.Time, col domain.SlotColumn, occupant string) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetOpenAdminHolds(ctx context.Context, date time.Time, slot types.TimeString) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// UserService интерфейс сервиса пользователей
type UserService interface {
	GetDisplayName(ctx context.Context, userID int64) string
	GetRole(ctx context.Context, userID int64) (domain.UserRole, error)
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
