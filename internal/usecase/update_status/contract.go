package update_status

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// SlotTimesService интерфейс сервиса конфигурации времён слотов
type SlotTimesService interface {
	Load(ctx context.Context, id int64) (*domain.SlotTimes, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Close(ctx context.Context, id int64, paidAmount float64) error
}

// WorkdayRepository интерфейс репозитория реестра занятости
type WorkdayRepository interface {
	ClearSlot(ctx context.Context, date time.Time, col domain.SlotColumn) error
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
