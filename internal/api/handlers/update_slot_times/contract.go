package update_slot_times

import (
	"context"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

type SlotTimesService interface {
	Save(ctx context.Context, id int64, raw [domain.SlotsPerDay]string) (*domain.SlotTimes, error)
	Invalidate()
}

type UserService interface {
	GetRole(ctx context.Context, userID int64) (domain.UserRole, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
