package create_appointment

import (
	"time"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID   int64            // ID клиента
	Date     time.Time        // Дата записи (без времени)
	Time     types.TimeString // Время слота, "HH:MM"
	Notes    *string          // Заметка (опционально)
	InspoImg *string          // Ссылка на референс-картинку (опционально)
	Location *string          // Адрес выезда (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID       int64
	UserID   int64
	Date     time.Time
	Time     types.TimeString
	Status   string
	Notes    *string
	InspoImg *string
	Location *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
