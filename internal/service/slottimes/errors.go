package slottimes

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов не задана
	ErrConfigNotFound = errors.New("slottimes: config not found")

	// ErrInvalidTime возвращается при некорректном формате времени слота
	ErrInvalidTime = errors.New("slottimes: times must be HH:MM or HH:MM:SS")

	// ErrDuplicateTime возвращается, когда пять времён не различны
	ErrDuplicateTime = errors.New("slottimes: times must be distinct")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slottimes: internal error")
)
