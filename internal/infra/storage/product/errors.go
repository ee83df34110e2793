package product

import "errors"

var (
	// ErrProductNotFound возвращается, когда расходник не найден
	ErrProductNotFound = errors.New("product.repository: product not found")

	// ErrDuplicate возвращается при дублировании имени или штрихкода
	ErrDuplicate = errors.New("product.repository: duplicate product name or barcode")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("product.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("product.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("product.repository: failed to scan row")
)
