package create_appointment

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/velumi/NailStudio-Backend/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	return nil
}

// truncate обрезает строку до limit байт, не разрывая UTF-8 символ
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// sanitizeNotes обрезает заметку до допустимой длины, пустая строка становится nil
func sanitizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	s := strings.TrimSpace(*notes)
	if s == "" {
		return nil
	}
	s = truncate(s, domain.MaxNotesLength)
	return &s
}

// sanitizeInspoImg пропускает только локальные пути загрузок и http(s)-ссылки
func sanitizeInspoImg(img *string) *string {
	if img == nil {
		return nil
	}
	s := strings.TrimSpace(*img)
	if s == "" {
		return nil
	}
	s = truncate(s, domain.MaxInspoImgLength)
	if strings.HasPrefix(s, "/uploads/") {
		if strings.Contains(s, "..") {
			return nil
		}
		return &s
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil
	}
	return &s
}

// sanitizeLocation обрезает адрес до допустимой длины, пустая строка становится nil
func sanitizeLocation(location *string) *string {
	if location == nil {
		return nil
	}
	s := strings.TrimSpace(*location)
	if s == "" {
		return nil
	}
	s = truncate(s, domain.MaxLocationLength)
	return &s
}
