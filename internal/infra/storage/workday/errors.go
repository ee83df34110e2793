package workday

import "errors"

var (
	// ErrDayNotFound возвращается, когда строка реестра на дату отсутствует
	ErrDayNotFound = errors.New("workday.repository: workday not found")

	// ErrSlotTaken возвращается, когда условное обновление ячейки не затронуло
	// ни одной строки - слот уже занят
	ErrSlotTaken = errors.New("workday.repository: slot already taken")

	// ErrInvalidSlot возвращается при попытке обратиться к несуществующей колонке слота
	ErrInvalidSlot = errors.New("workday.repository: invalid slot column")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workday.repository: failed to scan row")
)
