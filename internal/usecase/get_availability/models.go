package get_availability

import (
	"time"

	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date      time.Time // Дата (без времени)
	NumGuests int       // Число гостей, определяет категорию стола
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time          // Дата, на которую запрашивались слоты
	NumGuests      int                // Число гостей из запроса
	Category       string             // Выведенная категория стола
	AvailableTimes []types.TimeString // Доступные слоты в порядке каталога
}
