package create_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

func validRequest() *Request {
	return &Request{
		Name:      "Ana García",
		Email:     "ana@example.com",
		Phone:     "+34600111222",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:      "20:30",
		Place:     "Terraza",
		NumGuests: 2,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest(), domain.DefaultServiceSchedule()))
}

func TestValidateRequest_MissingFields(t *testing.T) {
	err := validateRequest(&Request{}, domain.DefaultServiceSchedule())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Сообщения по всем отсутствующим полям собираются за один проход
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"Name is required.",
		"Email is required.",
		"Phone is required.",
		"Date is required.",
		"Time is required.",
		"Place is required.",
		"Guests are required.",
	}, vErr.Messages)
}

func TestValidateRequest_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ana@example.com", true},
		{"a@b.co", true},
		{"ana@example", false},
		{"ana example@test.com", false},
		{"@example.com", false},
		{"ana@", false},
	}

	for _, tt := range tests {
		req := validRequest()
		req.Email = tt.email
		err := validateRequest(req, domain.DefaultServiceSchedule())
		if tt.valid {
			assert.NoError(t, err, "email=%q", tt.email)
		} else {
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "email=%q", tt.email)
			assert.Contains(t, vErr.Messages, "Please enter a valid email address.")
		}
	}
}

func TestValidateRequest_TimeSlot(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	// Некорректный формат времени
	req := validRequest()
	req.Time = "8pm"
	assert.ErrorIs(t, validateRequest(req, schedule), ErrInvalidTimeSlot)

	// Корректный формат, но не слот каталога
	req = validRequest()
	req.Time = "15:00"
	assert.ErrorIs(t, validateRequest(req, schedule), ErrInvalidTimeSlot)

	// Получасовая точка между слотами каталога
	req = validRequest()
	req.Time = "20:15"
	assert.ErrorIs(t, validateRequest(req, schedule), ErrInvalidTimeSlot)
}

func TestValidateRequest_NumGuests(t *testing.T) {
	req := validRequest()
	req.NumGuests = 0
	err := validateRequest(req, domain.DefaultServiceSchedule())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Guests are required."}, vErr.Messages)

	req.NumGuests = -3
	assert.ErrorIs(t, validateRequest(req, domain.DefaultServiceSchedule()), ErrInvalidInput)
}

func TestValidationError_Unwrap(t *testing.T) {
	err := &ValidationError{Messages: []string{"Name is required."}}
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Name is required.")
}
