package create_booking

import "errors"

var (
	// ErrCapacityExceeded возвращается, когда дневная ёмкость исчерпана
	ErrCapacityExceeded = errors.New("create_booking: daily booking capacity exceeded")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала не является слотом рабочего дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
