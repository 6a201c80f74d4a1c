package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingStatus represents the status of an appointment booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a service appointment in the system.
// Bookings are never physically deleted: cancellation is a status
// transition that preserves the row for history.
type Booking struct {
	ID           int64
	TrackingHash string // opaque public identifier handed to the customer
	CustomerID   int64
	VehicleID    int64
	ServiceID    int64
	BookingDate  time.Time // calendar day, compared by date only
	StartTime    types.TimeString
	Status       BookingStatus

	// Denormalized data for history: the appointment keeps what was
	// booked even if the customer or service record changes later.
	CustomerName        string
	ServiceName         string
	VehicleMake         *string
	VehicleModel        *string
	VehicleLicensePlate *string
	Notes               *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts against the daily capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status transition is allowed.
// Allowed: pending→confirmed, pending→cancelled, confirmed→cancelled.
// cancelled is terminal.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	default:
		return false
	}
}

// DayBookingsFilter фильтр для выборки бронирований на дату
type DayBookingsFilter struct {
	Date             time.Time      // Обязательный параметр (календарный день)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	CustomerID       *int64         // Фильтр по клиенту (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
