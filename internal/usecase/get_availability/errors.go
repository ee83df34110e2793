package get_availability

import "errors"

var (
	// ErrConfigMissing возвращается, когда времена слотов не сконфигурированы
	ErrConfigMissing = errors.New("get_availability: slot times config missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
