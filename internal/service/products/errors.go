package products

import "errors"

var (
	// ErrProductNotFound возвращается, когда расходник не найден
	ErrProductNotFound = errors.New("products: product not found")

	// ErrDuplicate возвращается при дублировании имени или штрихкода
	ErrDuplicate = errors.New("products: duplicate product name or barcode")

	// ErrNegativeQuantity возвращается, когда операция увела бы остаток в минус
	ErrNegativeQuantity = errors.New("products: quantity cannot go negative")

	// ErrOutOfStock возвращается при списании закончившегося расходника
	ErrOutOfStock = errors.New("products: out of stock")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("products: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("products: internal error")
)
