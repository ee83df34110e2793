package domain

import (
	"time"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// AppointmentStatus статус записи на приём
type AppointmentStatus string

const (
	StatusOpen     AppointmentStatus = "open"
	StatusClosed   AppointmentStatus = "closed"
	StatusCanceled AppointmentStatus = "canceled"
)

// IsValid проверяет, что статус является одним из допустимых
func (s AppointmentStatus) IsValid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusCanceled
}

// CanTransitionTo проверяет допустимость перехода статуса
// Единственный запрещённый переход: closed -> canceled (оплаченный визит
// нельзя отменить, сначала его нужно явно переоткрыть).
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == StatusClosed && next == StatusCanceled {
		return false
	}
	return true
}

// Appointment запись клиента на приём
// Записи никогда не удаляются физически - отмена это статус, а не удаление.
type Appointment struct {
	ID       int64
	UserID   int64
	WorkDate time.Time
	Slot     types.TimeString
	Status   AppointmentStatus

	Notes    *string // заметка клиента, до 1000 символов
	InspoImg *string // ссылка на референс-картинку, до 1024 символов
	Location *string // адрес выезда, до 255 символов

	PaidAmount *float64 // заполняется только при закрытии
	ClosedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen проверяет, что запись активна
func (a *Appointment) IsOpen() bool {
	return a.Status == StatusOpen
}

// IsAdminHold проверяет, что запись является административной блокировкой слота
func (a *Appointment) IsAdminHold() bool {
	return a.Notes != nil && *a.Notes == AdminHoldNote
}
