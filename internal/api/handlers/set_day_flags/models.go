package set_day_flags

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	setDayFlags "github.com/velumi/NailStudio-Backend/internal/usecase/set_day_flags"
)

// SetDayFlagsRequest HTTP request model
// Flags - частичное обновление, Only - открыть только один слот
type SetDayFlagsRequest struct {
	Flags map[string]bool `json:"flags,omitempty"`
	Only  *string         `json:"only,omitempty"`
}

// DayFlagsResponse HTTP response model
type DayFlagsResponse struct {
	Date  string          `json:"date"`
	Flags map[string]bool `json:"flags"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetDayFlagsRequest) ToUseCaseRequest(managerID int64, date time.Time) setDayFlags.Request {
	req := setDayFlags.Request{
		ManagerID: managerID,
		Date:      date,
	}
	if r.Only != nil {
		col := domain.SlotColumn(*r.Only)
		req.Only = &col
	}
	if len(r.Flags) > 0 {
		req.Flags = make(map[domain.SlotColumn]bool, len(r.Flags))
		for key, open := range r.Flags {
			req.Flags[domain.SlotColumn(key)] = open
		}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setDayFlags.Response) *DayFlagsResponse {
	flags := make(map[string]bool, len(resp.Flags))
	for col, open := range resp.Flags {
		flags[string(col)] = open
	}
	return &DayFlagsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Flags: flags,
	}
}
