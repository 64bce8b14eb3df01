package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NumGuests <= 0 {
		return fmt.Errorf("%w: numGuests must be positive", ErrInvalidInput)
	}

	return nil
}
