package get_day_flags

import "github.com/velumi/NailStudio-Backend/internal/domain"

// DayFlagsResponse HTTP response model
// Ключи флагов соответствуют колонкам реестра
type DayFlagsResponse struct {
	Date  string          `json:"date"`
	Flags map[string]bool `json:"flags"`
}

// FromDomain конвертирует флаги дня в HTTP response
func FromDomain(override *domain.DayOverride) *DayFlagsResponse {
	flags := make(map[string]bool, domain.SlotsPerDay)
	for _, col := range domain.SlotColumns {
		flags[string(col)] = override.IsOpen(col)
	}
	return &DayFlagsResponse{
		Date:  override.Date.Format(domain.DateFormat),
		Flags: flags,
	}
}
