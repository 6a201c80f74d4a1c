package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID   int64   `json:"customerId"`
	VehicleID    int64   `json:"vehicleId"`
	ServiceID    int64   `json:"serviceId"`
	BookingDate  string  `json:"bookingDate"` // "2026-09-15"
	StartTime    string  `json:"startTime"`   // "09:00"
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehiclePlate *string `json:"vehicleLicensePlate,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	TrackingHash string  `json:"trackingHash"`
	CustomerID   int64   `json:"customerId"`
	VehicleID    int64   `json:"vehicleId"`
	ServiceID    int64   `json:"serviceId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehiclePlate *string `json:"vehicleLicensePlate,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:   r.CustomerID,
		VehicleID:    r.VehicleID,
		ServiceID:    r.ServiceID,
		Date:         bookingDate,
		StartTime:    startTime,
		CustomerName: r.CustomerName,
		ServiceName:  r.ServiceName,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
		VehiclePlate: r.VehiclePlate,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		TrackingHash: resp.TrackingHash,
		CustomerID:   resp.CustomerID,
		VehicleID:    resp.VehicleID,
		ServiceID:    resp.ServiceID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		CustomerName: resp.CustomerName,
		ServiceName:  resp.ServiceName,
		VehicleMake:  resp.VehicleMake,
		VehicleModel: resp.VehicleModel,
		VehiclePlate: resp.VehiclePlate,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
