package signup

import (
	"context"

	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
)

type UserService interface {
	Signup(ctx context.Context, req *usersService.SignupRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
