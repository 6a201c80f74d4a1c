package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInvalidWorkingHours возвращается, когда время открытия не раньше времени закрытия
	ErrInvalidWorkingHours = errors.New("schedule: open time must be before close time")

	// ErrInvalidCapacity возвращается при недопустимом значении дневной ёмкости
	ErrInvalidCapacity = errors.New("schedule: invalid max daily bookings")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("schedule: invalid slot duration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
