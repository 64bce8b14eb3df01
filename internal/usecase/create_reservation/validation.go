package create_reservation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

// emailRegex совпадает с проверкой из legacy-схемы
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail приводит email к виду из legacy-схемы (trim + lowercase)
// Применяется до валидации, как сеттеры схемы до проверок
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// validateRequest валидирует поля заявки
// Сообщения по всем отсутствующим/некорректным полям собираются вместе,
// чтобы клиент получил полный список за один запрос
func validateRequest(req *Request, schedule domain.ServiceSchedule) error {
	messages := make([]string, 0)

	if strings.TrimSpace(req.Name) == "" {
		messages = append(messages, "Name is required.")
	} else if len(req.Name) > domain.MaxNameLength {
		messages = append(messages, "Name is too long.")
	}

	if strings.TrimSpace(req.Email) == "" {
		messages = append(messages, "Email is required.")
	} else if len(req.Email) > domain.MaxEmailLength || !emailRegex.MatchString(req.Email) {
		messages = append(messages, "Please enter a valid email address.")
	}

	if strings.TrimSpace(req.Phone) == "" {
		messages = append(messages, "Phone is required.")
	} else if len(req.Phone) > domain.MaxPhoneLength {
		messages = append(messages, "Phone is too long.")
	}

	if req.Date.IsZero() {
		messages = append(messages, "Date is required.")
	}

	if req.Time.IsZero() {
		messages = append(messages, "Time is required.")
	}

	if strings.TrimSpace(req.Place) == "" {
		messages = append(messages, "Place is required.")
	} else if len(req.Place) > domain.MaxPlaceLength {
		messages = append(messages, "Place is too long.")
	}

	if req.NumGuests < domain.MinGuests {
		messages = append(messages, "Guests are required.")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	// Формат времени и принадлежность каталогу проверяются только после того,
	// как все обязательные поля на месте
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !schedule.Contains(req.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.Time)
	}

	return nil
}
