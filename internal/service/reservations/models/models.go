package models

import (
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

// ReservationResponse бронь в ответе административного API
type ReservationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Place     string `json:"place"`
	NumGuests int    `json:"numGuests"`
	TableSize string `json:"tableSize"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную бронь в модель ответа
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      r.Time.String(),
		Place:     r.Place,
		NumGuests: r.NumGuests,
		TableSize: string(r.TableSize),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных броней
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}
