package create_appointment

import "errors"

var (
	// ErrConfigMissing возвращается, когда времена слотов не сконфигурированы
	ErrConfigMissing = errors.New("create_appointment: slot times config missing")

	// ErrInvalidTime возвращается, когда время не совпадает ни с одним слотом
	ErrInvalidTime = errors.New("create_appointment: invalid time")

	// ErrSlotConflict возвращается, когда слот уже занят
	// Конкурентная попытка проиграла гонку, либо сработал страховочный
	// уникальный индекс. Автоматических повторов нет.
	ErrSlotConflict = errors.New("create_appointment: slot already taken")

	// ErrSlotClosed возвращается, когда слот закрыт администратором
	// для обычных клиентов
	ErrSlotClosed = errors.New("create_appointment: slot closed by admin")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
