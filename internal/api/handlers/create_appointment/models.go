package create_appointment

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	createAppointment "github.com/velumi/NailStudio-Backend/internal/usecase/create_appointment"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	UserID   int64   `json:"userId"`
	Date     string  `json:"date"` // "2026-09-15"
	Time     string  `json:"time"` // "10:00"
	Notes    *string `json:"notes,omitempty"`
	InspoImg *string `json:"inspoImg,omitempty"`
	Location *string `json:"location,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	InspoImg  *string `json:"inspoImg,omitempty"`
	Location  *string `json:"location,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return createAppointment.Request{}, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return createAppointment.Request{}, err
	}

	return createAppointment.Request{
		UserID:   r.UserID,
		Date:     date,
		Time:     slotTime,
		Notes:    r.Notes,
		InspoImg: r.InspoImg,
		Location: r.Location,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		InspoImg:  resp.InspoImg,
		Location:  resp.Location,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
