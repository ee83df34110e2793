package get_user_appointments

import (
	"context"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

type AppointmentsService interface {
	GetUserAppointments(ctx context.Context, userID int64, statusFilter string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
