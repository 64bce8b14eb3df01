package create_reservation

import (
	"encoding/json"
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	createReservation "github.com/inigoestebangomez/cool-mex-server/internal/usecase/create_reservation"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

// PhoneNumber принимает телефон и строкой, и числом
// Legacy клиенты отправляют phone числом (так он хранился в старой схеме)
type PhoneNumber string

// UnmarshalJSON декодирует строковое или числовое значение
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PhoneNumber(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PhoneNumber(n.String())
	return nil
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     PhoneNumber `json:"phone"`
	Date      string      `json:"date"` // "2025-10-15"
	Time      string      `json:"time"` // "20:30"
	Place     string      `json:"place"`
	NumGuests int         `json:"numGuests"`
}

// ReservationResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая дата передается нулевым временем: usecase соберет сообщение
// "Date is required." вместе с остальными полями
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createReservation.Request{
		Name:  r.Name,
		Email: r.Email,
		Phone: string(r.Phone),
		Date:  date,
		// Формат времени проверяет usecase вместе с принадлежностью каталогу
		Time:      types.TimeString(r.Time),
		Place:     r.Place,
		NumGuests: r.NumGuests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Place:     resp.Place,
		NumGuests: resp.NumGuests,
		TableSize: resp.TableSize,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
