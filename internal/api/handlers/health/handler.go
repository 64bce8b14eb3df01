package health

import (
	"net/http"

	"github.com/inigoestebangomez/cool-mex-server/internal/api/handlers"
)

// Handle GET / - проверка живости, ответ сохранен от legacy API
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, "All good in here")
}
