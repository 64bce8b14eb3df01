package get_table_plan

import (
	"net/http"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	response *TablePlanResponse
	logger   Logger
}

// NewHandler создает обработчик, отдающий действующую конфигурацию
// Ответ собирается один раз: конфигурация не меняется во время работы
func NewHandler(plan domain.TablePlan, schedule domain.ServiceSchedule, logger Logger) *Handler {
	return &Handler{
		response: FromDomain(plan, schedule),
		logger:   logger,
	}
}

// Handle GET /reservation/config (admin)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /reservation/config - Table plan retrieved")
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
