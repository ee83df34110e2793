package get_availability

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// SlotTimesService интерфейс сервиса конфигурации времён слотов
type SlotTimesService interface {
	Load(ctx context.Context, id int64) (*domain.SlotTimes, error)
}

// WorkdayRepository интерфейс репозитория реестра занятости
type WorkdayRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.Workday, error)
}

// OverrideRepository интерфейс репозитория флагов доступности
type OverrideRepository interface {
	EnsureDefaults(ctx context.Context, date time.Time) (*domain.DayOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
