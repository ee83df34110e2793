package get_availability

import (
	"time"

	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Request модель запроса свободных слотов на дату
type Request struct {
	Date time.Time
}

// Response модель ответа со свободными временами в каноническом порядке
type Response struct {
	Date  time.Time
	Times []types.TimeString
}
