package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time          // Дата, на которую запрашивались слоты
	Capacity       int                // Дневная ёмкость
	ActiveBookings int                // Количество активных бронирований
	Slots          []types.TimeString // Доступные слоты (усечённый префикс сырых слотов)
}
