package slottimes

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов отсутствует
	ErrConfigNotFound = errors.New("slottimes.repository: slot times config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slottimes.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slottimes.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slottimes.repository: failed to scan row")
)
