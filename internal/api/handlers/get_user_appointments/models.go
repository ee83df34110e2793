package get_user_appointments

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"userId"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Status     string   `json:"status"`
	Notes      *string  `json:"notes,omitempty"`
	InspoImg   *string  `json:"inspoImg,omitempty"`
	Location   *string  `json:"location,omitempty"`
	PaidAmount *float64 `json:"paidAmount,omitempty"`
	ClosedAt   *string  `json:"closedAt,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// AppointmentsListResponse HTTP response model для списка записей
type AppointmentsListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomain конвертирует доменную запись в HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:         appt.ID,
		UserID:     appt.UserID,
		Date:       appt.WorkDate.Format(domain.DateFormat),
		Time:       appt.Slot.String(),
		Status:     string(appt.Status),
		Notes:      appt.Notes,
		InspoImg:   appt.InspoImg,
		Location:   appt.Location,
		PaidAmount: appt.PaidAmount,
		CreatedAt:  appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  appt.UpdatedAt.Format(time.RFC3339),
	}
	if appt.ClosedAt != nil {
		closedAt := appt.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &closedAt
	}
	return resp
}

// FromDomainList конвертирует список доменных записей в HTTP response
func FromDomainList(appts []*domain.Appointment) *AppointmentsListResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, FromDomain(appt))
	}
	return &AppointmentsListResponse{Appointments: out}
}
