package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
// Свободен слот, у которого пустая ячейка реестра и открытый флаг
type UseCase struct {
	slotTimes    SlotTimesService
	workdayRepo  WorkdayRepository
	overrideRepo OverrideRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotTimes SlotTimesService,
	workdayRepo WorkdayRepository,
	overrideRepo OverrideRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotTimes:    slotTimes,
		workdayRepo:  workdayRepo,
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Загружаем конфигурацию времён слотов
	times, err := uc.slotTimes.Load(ctx, domain.DefaultSlotTimesID)
	if err != nil {
		if errors.Is(err, slottimesService.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailability: slot times config missing")
			return nil, ErrConfigMissing
		}
		uc.logger.Error("GetAvailability: failed to load slot times: %v", err)
		return nil, fmt.Errorf("%w: failed to load slot times: %v", ErrInternal, err)
	}

	// 3. Читаем реестр занятости (отсутствующая строка = все свободно)
	day, err := uc.workdayRepo.Get(ctx, req.Date)
	if err != nil && !errors.Is(err, workdayRepo.ErrDayNotFound) {
		uc.logger.Error("GetAvailability: failed to get workday: %v", err)
		return nil, fmt.Errorf("%w: failed to get workday: %v", ErrInternal, err)
	}

	// 4. Материализуем флаги доступности
	override, err := uc.overrideRepo.EnsureDefaults(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to ensure day override: %v", err)
		return nil, fmt.Errorf("%w: failed to ensure day override: %v", ErrInternal, err)
	}

	// 5. Свободные слоты в каноническом порядке
	free := make([]types.TimeString, 0, domain.SlotsPerDay)
	for _, col := range domain.SlotColumns {
		t, ok := times.TimeFor(col)
		if !ok {
			continue
		}
		if day.IsTaken(col) || !override.IsOpen(col) {
			continue
		}
		free = append(free, t.HM())
	}

	uc.logger.Info("GetAvailability: %s has %d free slots", req.Date.Format(domain.DateFormat), len(free))

	return &Response{Date: req.Date, Times: free}, nil
}
