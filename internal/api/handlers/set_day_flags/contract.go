package set_day_flags

import (
	"context"

	setDayFlags "github.com/velumi/NailStudio-Backend/internal/usecase/set_day_flags"
)

type SetDayFlagsUseCase interface {
	Execute(ctx context.Context, req setDayFlags.Request) (*setDayFlags.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
