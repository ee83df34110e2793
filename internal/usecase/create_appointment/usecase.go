package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	overrideRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/dayoverride"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
)

// UseCase use case для создания записи на слот
type UseCase struct {
	slotTimes    SlotTimesService
	workdayRepo  WorkdayRepository
	apptRepo     AppointmentRepository
	overrideRepo OverrideRepository
	users        UserService
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotTimes SlotTimesService,
	workdayRepo WorkdayRepository,
	apptRepo AppointmentRepository,
	overrideRepo OverrideRepository,
	users UserService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotTimes:    slotTimes,
		workdayRepo:  workdayRepo,
		apptRepo:     apptRepo,
		overrideRepo: overrideRepo,
		users:        users,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Захват ячейки и вставка записи идут в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, date=%s, time=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем конфигурацию времён слотов
	times, err := uc.slotTimes.Load(ctx, domain.DefaultSlotTimesID)
	if err != nil {
		if errors.Is(err, slottimesService.ErrConfigNotFound) {
			uc.logger.Warn("CreateAppointment: slot times config missing")
			return nil, ErrConfigMissing
		}
		uc.logger.Error("CreateAppointment: failed to load slot times: %v", err)
		return nil, fmt.Errorf("%w: failed to load slot times: %v", ErrInternal, err)
	}

	// 3. Сопоставляем запрошенное время с колонкой реестра
	col, ok := times.ColumnFor(req.Time)
	if !ok {
		uc.logger.Warn("CreateAppointment: time %s is not a configured slot", req.Time)
		return nil, ErrInvalidTime
	}

	// 4. Проверяем флаги доступности дня (менеджер может записывать в закрытые слоты)
	override, err := uc.overrideRepo.Get(ctx, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("CreateAppointment: failed to get day override: %v", err)
		return nil, fmt.Errorf("%w: failed to get day override: %v", ErrInternal, err)
	}
	if override != nil && !override.IsOpen(col) {
		role, roleErr := uc.users.GetRole(ctx, req.UserID)
		if roleErr != nil || role != domain.RoleManager {
			uc.logger.Warn("CreateAppointment: slot %s on %s is closed by override",
				req.Time, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotClosed
		}
	}

	// 5. Нормализуем необязательные поля
	notes := sanitizeNotes(req.Notes)
	inspoImg := sanitizeInspoImg(req.InspoImg)
	location := sanitizeLocation(req.Location)

	// 6. Имя занимающего для ячейки реестра
	displayName := uc.users.GetDisplayName(ctx, req.UserID)

	var result *domain.Appointment

	// 7. Захватываем ячейку и создаем запись атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 7.1. Гарантируем наличие строки реестра на дату
		if err := uc.workdayRepo.EnsureDay(txCtx, req.Date); err != nil {
			uc.logger.Error("CreateAppointment: failed to ensure workday: %v", err)
			return fmt.Errorf("%w: failed to ensure workday: %v", ErrInternal, err)
		}

		// 7.2. Условный захват ячейки: свободна только пустая
		if err := uc.workdayRepo.ClaimSlot(txCtx, req.Date, col, displayName); err != nil {
			if errors.Is(err, workdayRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
					req.Time, req.Date.Format(domain.DateFormat))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to claim slot: %v", err)
			return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
		}

		// 7.3. Создаем запись
		appt := &domain.Appointment{
			UserID:   req.UserID,
			WorkDate: req.Date,
			Slot:     req.Time.HM(),
			Status:   domain.StatusOpen,
			Notes:    notes,
			InspoImg: inspoImg,
			Location: location,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: duplicate active appointment for %s %s",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		Date:      result.WorkDate,
		Time:      result.Slot,
		Status:    string(result.Status),
		Notes:     result.Notes,
		InspoImg:  result.InspoImg,
		Location:  result.Location,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
