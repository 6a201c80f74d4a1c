package session

import (
	"errors"
	"fmt"
	"strings"
)

// isBusinessError различает бизнес-сентинелы Store и транспортные сбои
func isBusinessError(err error) bool {
	return errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrValidation)
}

// validateInput проверяет обязательные поля новой записи
func validateInput(input CreateBookingInput) error {
	if input.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id is required", ErrValidation)
	}

	if input.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id is required", ErrValidation)
	}

	if input.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrValidation)
	}

	if input.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrValidation)
	}

	if err := input.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time must be in HH:MM format", ErrValidation)
	}

	if strings.TrimSpace(input.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	}

	if strings.TrimSpace(input.ServiceName) == "" {
		return fmt.Errorf("%w: service_name is required", ErrValidation)
	}

	return nil
}
