package set_day_flags

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// Request модель запроса на смену флагов доступности дня
// Flags - частичное обновление поверх текущих значений
// Only - шорткат: открыть только указанный слот, остальные закрыть
type Request struct {
	ManagerID int64
	Date      time.Time
	Flags     map[domain.SlotColumn]bool
	Only      *domain.SlotColumn
}

// Response модель ответа с итоговыми флагами дня
type Response struct {
	Date  time.Time
	Flags map[domain.SlotColumn]bool
}
