package domain

import "time"

// Product расходник на складе салона
type Product struct {
	Name           string
	CategoryName   string
	Barcode        *string
	Quantity       int
	Firma          *string // производитель
	Color          *string
	LastItemOpened *time.Time // дата вскрытия последней единицы
}

// IsOutOfStock проверяет, что расходник закончился
func (p *Product) IsOutOfStock() bool {
	return p.Quantity <= 0
}

// IsLow проверяет, что осталась последняя единица
func (p *Product) IsLow() bool {
	return p.Quantity == 1
}

// ProductFilter фильтр списка расходников
type ProductFilter struct {
	Search   string // подстрока по имени/штрихкоду/цвету/производителю
	Category string
	ZeroOnly bool // только закончившиеся (qnt = 0)
	LowOnly  bool // только на исходе (qnt = 1)
}

// Category категория расходников
type Category struct {
	Name string
}
