package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
	getAvailability "github.com/inigoestebangomez/cool-mex-server/internal/usecase/get_availability"
)

const (
	msgInvalidDate      = "Date must be YYYY-MM-DD."
	msgInvalidNumGuests = "Guests must be a positive number."
	msgStoreUnavailable = "Service temporarily unavailable, please retry."
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /reservation/availability/{date}/{numGuests}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем numGuests из URL
	numGuests, err := strconv.Atoi(vars["numGuests"])
	if err != nil {
		h.logger.Warn("GET /reservation/availability/{date}/{numGuests} - Invalid numGuests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNumGuests)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(vars["date"], numGuests)
	if err != nil {
		h.logger.Warn("GET /reservation/availability/{date}/{numGuests} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /reservation/availability/{date}/{numGuests} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidNumGuests)

		case errors.Is(err, getAvailability.ErrStoreUnavailable):
			h.logger.Error("GET /reservation/availability/{date}/{numGuests} - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservation/availability/{date}/{numGuests} - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reservation/availability/{date}/{numGuests} - Availability retrieved: date=%s, guests=%d, available=%d",
		vars["date"], numGuests, len(response.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
