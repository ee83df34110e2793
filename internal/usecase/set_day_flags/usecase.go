package set_day_flags

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
	"github.com/velumi/NailStudio-Backend/pkg/ptr"
)

// UseCase use case для смены флагов доступности дня
// Закрытие слота ставит административную блокировку в реестре,
// открытие снимает только свои блокировки.
type UseCase struct {
	slotTimes    SlotTimesService
	overrideRepo OverrideRepository
	workdayRepo  WorkdayRepository
	apptRepo     AppointmentRepository
	users        UserService
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotTimes SlotTimesService,
	overrideRepo OverrideRepository,
	workdayRepo WorkdayRepository,
	apptRepo AppointmentRepository,
	users UserService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotTimes:    slotTimes,
		overrideRepo: overrideRepo,
		workdayRepo:  workdayRepo,
		apptRepo:     apptRepo,
		users:        users,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case смены флагов
// Флаги, блокировки и снятия идут в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("SetDayFlags: manager=%d, date=%s", req.ManagerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetDayFlags: validation failed: %v", err)
		return nil, err
	}

	// 2. Только менеджер может управлять флагами
	role, err := uc.users.GetRole(ctx, req.ManagerID)
	if err != nil || role != domain.RoleManager {
		uc.logger.Warn("SetDayFlags: user id=%d is not a manager", req.ManagerID)
		return nil, ErrForbidden
	}

	// 3. Загружаем конфигурацию времён слотов - блокировкам нужно время ячейки
	times, err := uc.slotTimes.Load(ctx, domain.DefaultSlotTimesID)
	if err != nil {
		if errors.Is(err, slottimesService.ErrConfigNotFound) {
			uc.logger.Warn("SetDayFlags: slot times config missing")
			return nil, ErrConfigMissing
		}
		uc.logger.Error("SetDayFlags: failed to load slot times: %v", err)
		return nil, fmt.Errorf("%w: failed to load slot times: %v", ErrInternal, err)
	}

	// 4. Имя менеджера для ячеек реестра
	displayName := uc.users.GetDisplayName(ctx, req.ManagerID)

	var result *domain.DayOverride

	// 5. Применяем флаги атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Материализуем текущие флаги (отсутствующая строка = все открыты)
		prev, err := uc.overrideRepo.EnsureDefaults(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("SetDayFlags: failed to ensure defaults: %v", err)
			return fmt.Errorf("%w: failed to ensure defaults: %v", ErrInternal, err)
		}

		// 5.2. Вычисляем итоговые флаги
		next := buildNextFlags(prev, req)

		// 5.3. Сохраняем флаги
		if err := uc.overrideRepo.Upsert(txCtx, next); err != nil {
			uc.logger.Error("SetDayFlags: failed to upsert flags: %v", err)
			return fmt.Errorf("%w: failed to upsert flags: %v", ErrInternal, err)
		}

		// 5.4. Переходы флагов: закрытие ставит блокировку, открытие снимает
		for _, col := range domain.SlotColumns {
			wasOpen := prev.IsOpen(col)
			isOpen := next.IsOpen(col)

			switch {
			case wasOpen && !isOpen:
				if err := uc.holdSlot(txCtx, req.ManagerID, req.Date, col, times, displayName); err != nil {
					return err
				}
			case !wasOpen && isOpen:
				if err := uc.releaseSlot(txCtx, req.Date, col, times); err != nil {
					return err
				}
			}
		}

		result = next
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetDayFlags: flags updated for %s", req.Date.Format(domain.DateFormat))

	flags := make(map[domain.SlotColumn]bool, domain.SlotsPerDay)
	for _, col := range domain.SlotColumns {
		flags[col] = result.IsOpen(col)
	}

	return &Response{Date: req.Date, Flags: flags}, nil
}

// buildNextFlags вычисляет итоговые флаги из запроса поверх текущих
func buildNextFlags(prev *domain.DayOverride, req Request) *domain.DayOverride {
	next := domain.NewDefaultDayOverride(req.Date)
	if req.Only != nil {
		for _, col := range domain.SlotColumns {
			next.Open[col] = col == *req.Only
		}
		return next
	}
	for _, col := range domain.SlotColumns {
		next.Open[col] = prev.IsOpen(col)
	}
	for col, open := range req.Flags {
		next.Open[col] = open
	}
	return next
}

// holdSlot захватывает ячейку под административную блокировку
// Занятая клиентом ячейка молча пропускается - запись клиента важнее флага
func (uc *UseCase) holdSlot(ctx context.Context, managerID int64, date time.Time, col domain.SlotColumn, times *domain.SlotTimes, displayName string) error {
	slotTime, ok := times.TimeFor(col)
	if !ok {
		return nil
	}

	if err := uc.workdayRepo.EnsureDay(ctx, date); err != nil {
		uc.logger.Error("SetDayFlags: failed to ensure workday: %v", err)
		return fmt.Errorf("%w: failed to ensure workday: %v", ErrInternal, err)
	}

	if err := uc.workdayRepo.ClaimSlot(ctx, date, col, displayName); err != nil {
		if errors.Is(err, workdayRepo.ErrSlotTaken) {
			uc.logger.Info("SetDayFlags: slot %s on %s already taken, hold skipped",
				col, date.Format(domain.DateFormat))
			return nil
		}
		uc.logger.Error("SetDayFlags: failed to claim slot %s: %v", col, err)
		return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}

	hold := &domain.Appointment{
		UserID:   managerID,
		WorkDate: date,
		Slot:     slotTime.HM(),
		Status:   domain.StatusOpen,
		Notes:    ptr.Ptr(domain.AdminHoldNote),
	}

	if _, err := uc.apptRepo.Create(ctx, hold); err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			uc.logger.Info("SetDayFlags: hold appointment for %s already exists", col)
			return nil
		}
		uc.logger.Error("SetDayFlags: failed to create hold appointment: %v", err)
		return fmt.Errorf("%w: failed to create hold appointment: %v", ErrInternal, err)
	}

	return nil
}

// releaseSlot снимает административные блокировки со слота
// Ячейка очищается только если в ней стоит имя владельца блокировки
func (uc *UseCase) releaseSlot(ctx context.Context, date time.Time, col domain.SlotColumn, times *domain.SlotTimes) error {
	slotTime, ok := times.TimeFor(col)
	if !ok {
		return nil
	}

	holds, err := uc.apptRepo.GetOpenAdminHolds(ctx, date, slotTime.HM())
	if err != nil {
		uc.logger.Error("SetDayFlags: failed to get admin holds for %s: %v", col, err)
		return fmt.Errorf("%w: failed to get admin holds: %v", ErrInternal, err)
	}

	for _, hold := range holds {
		if err := uc.apptRepo.UpdateStatus(ctx, hold.ID, domain.StatusCanceled); err != nil {
			uc.logger.Error("SetDayFlags: failed to cancel hold id=%d: %v", hold.ID, err)
			return fmt.Errorf("%w: failed to cancel hold: %v", ErrInternal, err)
		}

		occupant := uc.users.GetDisplayName(ctx, hold.UserID)
		cleared, err := uc.workdayRepo.ClearSlotIfOccupant(ctx, date, col, occupant)
		if err != nil {
			uc.logger.Error("SetDayFlags: failed to clear slot %s: %v", col, err)
			return fmt.Errorf("%w: failed to clear slot: %v", ErrInternal, err)
		}
		if !cleared {
			uc.logger.Info("SetDayFlags: slot %s on %s held by someone else, cell kept",
				col, date.Format(domain.DateFormat))
		}
	}

	return nil
}
