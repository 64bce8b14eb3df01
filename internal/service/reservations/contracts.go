package reservations

import (
	"context"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
