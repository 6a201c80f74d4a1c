package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetDayBookingsRequest запрос на получение бронирований на дату
type GetDayBookingsRequest struct {
	Date             time.Time
	Status           *string
	IncludeCancelled bool
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64
	Status     *string
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse представление бронирования для вызывающего слоя
type BookingResponse struct {
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

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Converters

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                  b.ID,
		TrackingHash:        b.TrackingHash,
		CustomerID:          b.CustomerID,
		VehicleID:           b.VehicleID,
		ServiceID:           b.ServiceID,
		BookingDate:         b.BookingDate.Format(domain.DateFormat),
		StartTime:           b.StartTime.String(),
		Status:              string(b.Status),
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
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetDayBookingsRequest) ToDomainFilter() (domain.DayBookingsFilter, error) {
	filter := domain.DayBookingsFilter{
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.DayBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
