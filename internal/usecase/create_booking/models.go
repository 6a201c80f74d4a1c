package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID   int64            // ID клиента
	VehicleID    int64            // ID автомобиля клиента (опционально, 0 когда не указан)
	ServiceID    int64            // ID услуги
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время начала слота (например, "09:00")
	CustomerName string           // Имя клиента (денормализация для истории)
	ServiceName  string           // Название услуги (денормализация для истории)
	VehicleMake  *string          // Марка автомобиля (опционально)
	VehicleModel *string          // Модель автомобиля (опционально)
	VehiclePlate *string          // Госномер (опционально)
	Notes        *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	TrackingHash string           // Публичный трекинг-хэш
	CustomerID   int64            // ID клиента
	VehicleID    int64            // ID автомобиля
	ServiceID    int64            // ID услуги
	BookingDate  time.Time        // Дата бронирования
	StartTime    types.TimeString // Время начала
	Status       string           // Статус бронирования

	// Денормализованные данные
	CustomerName string  // Имя клиента
	ServiceName  string  // Название услуги
	VehicleMake  *string // Марка автомобиля
	VehicleModel *string // Модель автомобиля
	VehiclePlate *string // Госномер
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
