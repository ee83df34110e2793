package dayoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда строка флагов на дату отсутствует
	ErrOverrideNotFound = errors.New("dayoverride.repository: day override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dayoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dayoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dayoverride.repository: failed to scan row")
)
