package update_status

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	updateStatus "github.com/velumi/NailStudio-Backend/internal/usecase/update_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status     string   `json:"status"` // open / closed / canceled
	PaidAmount *float64 `json:"paidAmount,omitempty"`
}

// AppointmentStatusResponse HTTP response model
type AppointmentStatusResponse struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"userId"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Status     string   `json:"status"`
	PaidAmount *float64 `json:"paidAmount,omitempty"`
	ClosedAt   *string  `json:"closedAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *AppointmentStatusResponse {
	out := &AppointmentStatusResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Status:     resp.Status,
		PaidAmount: resp.PaidAmount,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.ClosedAt != nil {
		closedAt := resp.ClosedAt.Format(time.RFC3339)
		out.ClosedAt = &closedAt
	}
	return out
}
