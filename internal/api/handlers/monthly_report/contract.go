package monthly_report

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	reportsService "github.com/velumi/NailStudio-Backend/internal/service/reports"
)

type ReportService interface {
	Monthly(ctx context.Context, from, to *time.Time) (*reportsService.MonthlyResult, error)
}

type UserService interface {
	GetRole(ctx context.Context, userID int64) (domain.UserRole, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
