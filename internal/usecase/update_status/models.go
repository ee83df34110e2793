package update_status

import (
	"time"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID int64
	Status        string   // open / closed / canceled
	PaidAmount    *float64 // Обязателен при закрытии
}

// Response модель ответа с обновленной записью
type Response struct {
	ID         int64
	UserID     int64
	Date       time.Time
	Time       types.TimeString
	Status     string
	PaidAmount *float64
	ClosedAt   *time.Time

	UpdatedAt time.Time
}
