package create_reservation

import (
	"time"

	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

// Request модель заявки на бронь
type Request struct {
	Name      string           // Имя гостя
	Email     string           // Email для подтверждения
	Phone     string           // Телефон
	Date      time.Time        // Дата брони (без времени)
	Time      types.TimeString // Время слота (например, "20:30")
	Place     string           // Зал / зона ресторана
	NumGuests int              // Число гостей
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64            // ID созданной брони
	Name      string           // Имя гостя
	Email     string           // Email
	Phone     string           // Телефон
	Date      time.Time        // Дата брони
	Time      types.TimeString // Время слота
	Place     string           // Зал / зона
	NumGuests int              // Число гостей
	TableSize string           // Выведенная категория стола

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
