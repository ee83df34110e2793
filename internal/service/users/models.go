package users

import "time"

// SignupRequest запрос на регистрацию пользователя
type SignupRequest struct {
	UserID      int64
	FirstName   string
	LastName    string
	UserName    string
	DateOfBirth *time.Time
	PhoneNumber *string
	Password    string
}

// AuthenticatedUser результат успешного входа
type AuthenticatedUser struct {
	UserID   int64
	UserName string
	Role     string
}
