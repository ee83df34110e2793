package domain

import (
	"strconv"
	"time"
)

// UserRole роль пользователя
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleManager UserRole = "manager"
)

// User пользователь системы (клиент или менеджер салона)
type User struct {
	ID           int64
	UserName     string
	FirstName    string
	LastName     string
	PhoneNumber  *string
	DateOfBirth  *time.Time
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsManager проверяет, что пользователь имеет роль менеджера
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// DisplayName возвращает отображаемое имя для реестра занятости
// Имя пользователя, при его отсутствии - числовой id.
func (u *User) DisplayName() string {
	if u.UserName != "" {
		return u.UserName
	}
	return FormatUserID(u.ID)
}

// FormatUserID возвращает числовой id пользователя как строку
// Используется как fallback отображаемого имени.
func FormatUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}
