package set_day_flags

import "errors"

var (
	// ErrForbidden возвращается, когда флаги пытается менять не менеджер
	ErrForbidden = errors.New("set_day_flags: manager role required")

	// ErrConfigMissing возвращается, когда времена слотов не сконфигурированы
	ErrConfigMissing = errors.New("set_day_flags: slot times config missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_day_flags: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_day_flags: internal error")
)
