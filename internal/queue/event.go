// Package queue defines messages published to the broker after an admission.
package queue

// ReservationConfirmedEvent is published when a reservation is successfully
// admitted. A downstream mailer consumes it to send the confirmation email;
// the event carries enough data that the consumer never has to query the
// primary database.
type ReservationConfirmedEvent struct {
	ReservationID int64  `json:"reservation_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Place         string `json:"place"`
	NumGuests     int    `json:"num_guests"`
	TableSize     string `json:"table_size"`
	ConfirmedAt   string `json:"confirmed_at"`
}
