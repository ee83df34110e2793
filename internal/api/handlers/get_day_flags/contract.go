package get_day_flags

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

type OverrideRepository interface {
	EnsureDefaults(ctx context.Context, date time.Time) (*domain.DayOverride, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
