package list_reservations

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

const msgInvalidDate = "Date must be YYYY-MM-DD."

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /reservation/{date} (admin)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /reservation/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservation/{date} - Failed to list reservations: date=%s, error=%v",
			vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservation/{date} - Reservations listed: date=%s, total=%d",
		vars["date"], result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
