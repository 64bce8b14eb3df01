package domain

import (
	"time"

	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

// Reservation represents a confirmed table reservation.
// TableSize is always derived from NumGuests by the table plan at admission
// time and is never accepted from the client directly.
type Reservation struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	Time      types.TimeString
	Place     string
	NumGuests int
	TableSize TableCategory

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationsFilter filter for fetching persisted reservations
type ReservationsFilter struct {
	Date     time.Time
	Category *TableCategory // nil = all categories
}
