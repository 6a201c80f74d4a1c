package session

import "errors"

var (
	// ErrCapacityExceeded возвращается, когда дневной лимит записей исчерпан
	ErrCapacityExceeded = errors.New("daily booking capacity exceeded")

	// ErrValidation возвращается при некорректных данных новой записи
	ErrValidation = errors.New("booking validation failed")

	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStore возвращается при сбое источника данных (транспорт, сервер)
	ErrStore = errors.New("booking store failure")

	// ErrSuperseded возвращается, когда результат проверки доступности
	// вытеснен более поздней загрузкой на другую дату
	ErrSuperseded = errors.New("availability check superseded by newer load")
)
