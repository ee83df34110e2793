package signup

import (
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	usersService "github.com/velumi/NailStudio-Backend/internal/service/users"
)

// SignupRequest HTTP request model
type SignupRequest struct {
	UserID      int64   `json:"userId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	UserName    string  `json:"userName"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // "1998-04-12"
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    string  `json:"password"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SignupRequest) ToServiceRequest() (*usersService.SignupRequest, error) {
	req := &usersService.SignupRequest{
		UserID:      r.UserID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		UserName:    r.UserName,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
	}
	if r.DateOfBirth != nil {
		dob, err := time.Parse(domain.DateFormat, *r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		req.DateOfBirth = &dob
	}
	return req, nil
}
