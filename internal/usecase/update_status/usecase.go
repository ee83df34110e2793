package update_status

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
)

// UseCase use case для смены статуса записи
type UseCase struct {
	slotTimes   SlotTimesService
	apptRepo    AppointmentRepository
	workdayRepo WorkdayRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotTimes SlotTimesService,
	apptRepo AppointmentRepository,
	workdayRepo WorkdayRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotTimes:   slotTimes,
		apptRepo:    apptRepo,
		workdayRepo: workdayRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса
// Запись блокируется на время транзакции, отмена освобождает ячейку реестра
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: appointment=%d, status=%s", req.AppointmentID, req.Status)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		uc.logger.Warn("UpdateStatus: invalid appointment id %d", req.AppointmentID)
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	target := domain.AppointmentStatus(req.Status)
	if !target.IsValid() {
		uc.logger.Warn("UpdateStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	// 2. Меняем статус под блокировкой записи
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем запись с блокировкой (FOR UPDATE)
		appt, err := uc.apptRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateStatus: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateStatus: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Проверяем допустимость перехода
		if !appt.Status.CanTransitionTo(target) {
			uc.logger.Warn("UpdateStatus: transition %s -> %s is not allowed", appt.Status, target)
			return ErrInvalidTransition
		}

		switch target {
		case domain.StatusClosed:
			// 2.3. Закрытие требует конечную неотрицательную сумму
			if req.PaidAmount == nil {
				uc.logger.Warn("UpdateStatus: paid amount is required to close appointment id=%d", req.AppointmentID)
				return ErrInvalidAmount
			}
			amount := *req.PaidAmount
			if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
				uc.logger.Warn("UpdateStatus: invalid paid amount %v for appointment id=%d", amount, req.AppointmentID)
				return ErrInvalidAmount
			}
			if err := uc.apptRepo.Close(txCtx, req.AppointmentID, amount); err != nil {
				uc.logger.Error("UpdateStatus: failed to close appointment id=%d: %v", req.AppointmentID, err)
				return fmt.Errorf("%w: failed to close appointment: %v", ErrInternal, err)
			}

		case domain.StatusCanceled:
			// 2.4. Отмена освобождает ячейку реестра в той же транзакции
			if col, ok := uc.resolveColumn(txCtx, appt); ok {
				if err := uc.workdayRepo.ClearSlot(txCtx, appt.WorkDate, col); err != nil {
					uc.logger.Error("UpdateStatus: failed to clear slot for appointment id=%d: %v", req.AppointmentID, err)
					return fmt.Errorf("%w: failed to clear slot: %v", ErrInternal, err)
				}
			}
			if err := uc.apptRepo.UpdateStatus(txCtx, req.AppointmentID, target); err != nil {
				uc.logger.Error("UpdateStatus: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
				return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
			}

		default:
			if err := uc.apptRepo.UpdateStatus(txCtx, req.AppointmentID, target); err != nil {
				uc.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", req.AppointmentID, err)
				return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Перечитываем запись для ответа
	updated, err := uc.apptRepo.GetByIDForUpdate(ctx, req.AppointmentID)
	if err != nil {
		uc.logger.Error("UpdateStatus: failed to reload appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateStatus: appointment id=%d is now %s", updated.ID, updated.Status)

	return &Response{
		ID:         updated.ID,
		UserID:     updated.UserID,
		Date:       updated.WorkDate,
		Time:       updated.Slot,
		Status:     string(updated.Status),
		PaidAmount: updated.PaidAmount,
		ClosedAt:   updated.ClosedAt,
		UpdatedAt:  updated.UpdatedAt,
	}, nil
}

// resolveColumn сопоставляет время записи с колонкой реестра
// Если конфигурация отсутствует или время вне конфигурации, ячейку не трогаем
func (uc *UseCase) resolveColumn(ctx context.Context, appt *domain.Appointment) (domain.SlotColumn, bool) {
	times, err := uc.slotTimes.Load(ctx, domain.DefaultSlotTimesID)
	if err != nil {
		if !errors.Is(err, slottimesService.ErrConfigNotFound) {
			uc.logger.Warn("UpdateStatus: failed to load slot times: %v", err)
		}
		return "", false
	}
	return times.ColumnFor(appt.Slot.HM())
}
