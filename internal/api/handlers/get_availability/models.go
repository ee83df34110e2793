package get_availability

import (
	"github.com/velumi/NailStudio-Backend/internal/domain"
	getAvailability "github.com/velumi/NailStudio-Backend/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}
	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Times: times,
	}
}
