package bookingapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/session"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ScheduleConfig модель конфигурации расписания из API
type ScheduleConfig struct {
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// DaySlots модель сырых слотов рабочего дня из API
type DaySlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Booking модель бронирования из API
type Booking struct {
	ID                  int64      `json:"id"`
	TrackingHash        string     `json:"trackingHash"`
	CustomerID          int64      `json:"customerId"`
	VehicleID           int64      `json:"vehicleId"`
	ServiceID           int64      `json:"serviceId"`
	BookingDate         string     `json:"bookingDate"`
	StartTime           string     `json:"startTime"`
	Status              string     `json:"status"`
	CustomerName        string     `json:"customerName"`
	ServiceName         string     `json:"serviceName"`
	VehicleMake         *string    `json:"vehicleMake,omitempty"`
	VehicleModel        *string    `json:"vehicleModel,omitempty"`
	VehicleLicensePlate *string    `json:"vehicleLicensePlate,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	CancellationReason  *string    `json:"cancellationReason,omitempty"`
	CancelledAt         *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// BookingList модель списка бронирований из API
type BookingList struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	CustomerID          int64   `json:"customerId"`
	VehicleID           int64   `json:"vehicleId"`
	ServiceID           int64   `json:"serviceId"`
	BookingDate         string  `json:"bookingDate"`
	StartTime           string  `json:"startTime"`
	CustomerName        string  `json:"customerName"`
	ServiceName         string  `json:"serviceName"`
	VehicleMake         *string `json:"vehicleMake,omitempty"`
	VehicleModel        *string `json:"vehicleModel,omitempty"`
	VehicleLicensePlate *string `json:"vehicleLicensePlate,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// UpdateStatusRequest тело запроса на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain конвертирует модель API в domain.Booking
func (b *Booking) ToDomain() (*domain.Booking, error) {
	bookingDate, err := time.Parse(domain.DateFormat, b.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("parse booking date %q: %w", b.BookingDate, err)
	}

	startTime, err := types.NewTimeStringFromString(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time %q: %w", b.StartTime, err)
	}

	return &domain.Booking{
		ID:                  b.ID,
		TrackingHash:        b.TrackingHash,
		CustomerID:          b.CustomerID,
		VehicleID:           b.VehicleID,
		ServiceID:           b.ServiceID,
		BookingDate:         bookingDate,
		StartTime:           startTime,
		Status:              domain.BookingStatus(b.Status),
		CustomerName:        b.CustomerName,
		ServiceName:         b.ServiceName,
		VehicleMake:         b.VehicleMake,
		VehicleModel:        b.VehicleModel,
		VehicleLicensePlate: b.VehicleLicensePlate,
		Notes:               b.Notes,
		CancellationReason:  b.CancellationReason,
		CancelledAt:         b.CancelledAt,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}, nil
}

// fromSessionInput конвертирует входные данные сессии в тело запроса
func fromSessionInput(input session.CreateBookingInput) CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID:          input.CustomerID,
		VehicleID:           input.VehicleID,
		ServiceID:           input.ServiceID,
		BookingDate:         input.BookingDate.Format(domain.DateFormat),
		StartTime:           input.StartTime.String(),
		CustomerName:        input.CustomerName,
		ServiceName:         input.ServiceName,
		VehicleMake:         input.VehicleMake,
		VehicleModel:        input.VehicleModel,
		VehicleLicensePlate: input.VehicleLicensePlate,
		Notes:               input.Notes,
	}
}
