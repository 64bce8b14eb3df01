package get_availability

import (
	"time"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	getAvailability "github.com/inigoestebangomez/cool-mex-server/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
// Форма ответа сохранена от legacy API: только список доступных времен
type AvailabilityResponse struct {
	AvailableTimes []string `json:"availableTimes"`
}

// ToUseCaseRequest создает запрос use case из path параметров
func ToUseCaseRequest(dateStr string, numGuests int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:      date,
		NumGuests: numGuests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	times := make([]string, 0, len(resp.AvailableTimes))
	for _, t := range resp.AvailableTimes {
		times = append(times, t.String())
	}
	return &AvailabilityResponse{AvailableTimes: times}
}
