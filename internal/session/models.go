package session

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateBookingInput данные новой записи, вводимые клиентом
type CreateBookingInput struct {
	CustomerID          int64
	VehicleID           int64
	ServiceID           int64
	BookingDate         time.Time
	StartTime           types.TimeString
	CustomerName        string
	ServiceName         string
	VehicleMake         *string
	VehicleModel        *string
	VehicleLicensePlate *string
	Notes               *string
}

// Severity уровень уведомления
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultNotificationTTL время жизни уведомления по умолчанию
const DefaultNotificationTTL = 5 * time.Second

// Notification транзиентное уведомление для презентационного слоя
type Notification struct {
	ID        int64
	Title     string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired сообщает, истёк ли срок показа уведомления
func (n Notification) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}
