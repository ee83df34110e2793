package types

import (
	"errors"
	"fmt"
	"regexp"
)

// TimeString строка времени в формате "HH:MM"
// Используется для времени слотов вместо time.Time, чтобы не тянуть
// дату и таймзону туда, где нужно только время дня.
type TimeString string

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("invalid time string format")

	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

// NewTimeStringFromString создает TimeString из строки "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются. Возвращает ошибку при некорректном формате.
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(s[:5]), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if !timeRe.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// HM возвращает время, усечённое до "HH:MM"
func (t TimeString) HM() TimeString {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// HMS возвращает время, расширенное до "HH:MM:SS"
// Используется при записи в колонки типа TIME.
func (t TimeString) HMS() string {
	if len(t) == 5 {
		return string(t) + ":00"
	}
	return string(t)
}
