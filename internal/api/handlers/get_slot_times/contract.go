package get_slot_times

import (
	"context"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

type SlotTimesService interface {
	Load(ctx context.Context, id int64) (*domain.SlotTimes, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
