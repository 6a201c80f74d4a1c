package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Store источник данных сессии. Реализации обязаны возвращать ошибки,
// оборачивающие сентинелы этого пакета (ErrCapacityExceeded,
// ErrBookingNotFound, ErrInvalidTransition), чтобы контроллер мог
// различать бизнес-ошибки и транспортные сбои
type Store interface {
	GetCapacity(ctx context.Context) (int, error)
	GetDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
	GetBookingsByDate(ctx context.Context, date time.Time, includeCancelled bool) ([]*domain.Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider абстракция времени для тестируемости уведомлений
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на основе системных часов
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
