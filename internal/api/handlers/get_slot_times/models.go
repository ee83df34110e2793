package get_slot_times

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// SlotTimesResponse HTTP response model
type SlotTimesResponse struct {
	ID        int64    `json:"id"`
	Times     []string `json:"times"`
	UpdatedAt string   `json:"updatedAt"`
}

// FromDomain конвертирует конфигурацию слотов в HTTP response
func FromDomain(cfg *domain.SlotTimes) *SlotTimesResponse {
	times := make([]string, 0, domain.SlotsPerDay)
	for _, t := range cfg.Times {
		times = append(times, t.String())
	}
	return &SlotTimesResponse{
		ID:        cfg.ID,
		Times:     times,
		UpdatedAt: cfg.UpdatedAt.Format(time.RFC3339),
	}
}
