package create_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при отсутствующих или некорректных полях заявки
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не входит в каталог слотов
	ErrInvalidTimeSlot = errors.New("create_reservation: time is not a bookable slot")

	// ErrNoAvailability возвращается, когда корзина (дата, время, категория) уже заполнена
	ErrNoAvailability = errors.New("create_reservation: no tables available")

	// ErrStoreUnavailable возвращается при таймауте или исчерпании повторов
	// обращения к хранилищу; заявку безопасно повторить
	ErrStoreUnavailable = errors.New("create_reservation: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationError собирает сообщения по всем некорректным полям заявки
// Разворачивается в ErrInvalidInput, чтобы работала диспетчеризация errors.Is
type ValidationError struct {
	Messages []string
}

// Error возвращает все сообщения одной строкой
func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Messages, " ")
}

// Unwrap позволяет errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
