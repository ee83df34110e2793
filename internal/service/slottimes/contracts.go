package slottimes

import (
	"context"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// Repository интерфейс репозитория конфигурации времён слотов
type Repository interface {
	Get(ctx context.Context, id int64) (*domain.SlotTimes, error)
	Upsert(ctx context.Context, st *domain.SlotTimes) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования TTL)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
