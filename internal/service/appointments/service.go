package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
)

// StatusFilterAll значение фильтра "все статусы"
const StatusFilterAll = "all"

// Service сервис чтения записей на приём
// Все мутации идут через usecase-слой; сервис только читает.
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый сервис записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Appointments.GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// GetUserAppointments получает записи пользователя с фильтром по статусу
// statusFilter: "open" | "closed" | "canceled" | "all" (пустая строка - open,
// как в исходном поведении "мои записи").
func (s *Service) GetUserAppointments(ctx context.Context, userID int64, statusFilter string) ([]*domain.Appointment, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	var status *domain.AppointmentStatus
	switch statusFilter {
	case StatusFilterAll:
		status = nil
	case "":
		st := domain.StatusOpen
		status = &st
	default:
		st := domain.AppointmentStatus(statusFilter)
		if !st.IsValid() {
			s.logger.Warn("GetUserAppointments: invalid status filter %q for user=%d", statusFilter, userID)
			return nil, ErrInvalidStatus
		}
		status = &st
	}

	appts, err := s.repo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	return appts, nil
}
