package create_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
	createReservation "github.com/inigoestebangomez/cool-mex-server/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Date must be YYYY-MM-DD."
	msgInvalidTimeSlot    = "Time is not a bookable slot."
	msgNoAvailability     = "No hay disponibilidad"
	msgStoreUnavailable   = "Service temporarily unavailable, please retry."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservation - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservation - Validation failed: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservation - Invalid time slot: email=%s, time=%s", req.Email, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrNoAvailability):
			h.logger.Warn("POST /reservation - No availability: date=%s, time=%s, guests=%d",
				req.Date, req.Time, req.NumGuests)
			handlers.RespondBadRequest(w, msgNoAvailability)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservation - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /reservation - Failed to create reservation: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservation - Reservation created successfully: reservation_id=%d, table_size=%s",
		result.ID, result.TableSize)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// validationMessage возвращает собранные сообщения по полям заявки
func validationMessage(err error) string {
	var vErr *createReservation.ValidationError
	if errors.As(err, &vErr) {
		return strings.Join(vErr.Messages, " ")
	}
	return msgInvalidRequestBody
}
