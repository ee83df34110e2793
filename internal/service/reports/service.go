package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

var (
	// ErrInvalidRange возвращается, когда from позже to
	ErrInvalidRange = errors.New("reports: `from` must be <= `to`")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)

// ReportRepository интерфейс репозитория агрегатов по записям
type ReportRepository interface {
	MonthlyReport(ctx context.Context, from, to time.Time) ([]*domain.MonthlyReportRow, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Service сервис отчётов по выручке
type Service struct {
	repo         ReportRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис отчётов
func NewService(repo ReportRepository, logger Logger) *Service {
	return &Service{repo: repo, timeProvider: realTimeProvider{}, logger: logger}
}

// MonthlyResult результат месячного отчёта
type MonthlyResult struct {
	From   time.Time
	To     time.Time
	Months []*domain.MonthlyReportRow
}

// Monthly агрегирует записи и выручку по месяцам за период [from, to]
// При nil-границах берется скользящее окно: двенадцать месяцев, заканчивая
// первым числом текущего месяца.
func (s *Service) Monthly(ctx context.Context, from, to *time.Time) (*MonthlyResult, error) {
	now := s.timeProvider.Now()
	defaultTo := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	defaultFrom := defaultTo.AddDate(0, -11, 0)

	f := defaultFrom
	if from != nil {
		f = *from
	}
	t := defaultTo
	if to != nil {
		t = *to
	}

	if f.After(t) {
		return nil, ErrInvalidRange
	}

	months, err := s.repo.MonthlyReport(ctx, f, t)
	if err != nil {
		s.logger.Error("Reports.Monthly: repository error: %v", err)
		return nil, fmt.Errorf("%w: Monthly - repository error: %v", ErrInternal, err)
	}

	return &MonthlyResult{From: f, To: t, Months: months}, nil
}
