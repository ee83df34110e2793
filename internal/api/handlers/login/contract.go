package login

import (
	"context"

	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
)

type UserService interface {
	Login(ctx context.Context, login, password string) (*usersService.AuthenticatedUser, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
