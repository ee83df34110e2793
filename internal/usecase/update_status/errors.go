package update_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_status: appointment not found")

	// ErrInvalidTransition возвращается при запрещенном переходе статуса
	// (закрытую запись нельзя отменить)
	ErrInvalidTransition = errors.New("update_status: invalid status transition")

	// ErrInvalidAmount возвращается, когда сумма оплаты при закрытии
	// отсутствует или некорректна
	ErrInvalidAmount = errors.New("update_status: invalid paid amount")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_status: internal error")
)
