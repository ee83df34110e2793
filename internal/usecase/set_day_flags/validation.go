package set_day_flags

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req Request) error {
	if req.ManagerID <= 0 {
		return fmt.Errorf("%w: manager id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Only == nil && len(req.Flags) == 0 {
		return fmt.Errorf("%w: flags or only is required", ErrInvalidInput)
	}
	if req.Only != nil && !req.Only.IsValid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, *req.Only)
	}
	for col := range req.Flags {
		if !col.IsValid() {
			return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, col)
		}
	}
	return nil
}
