package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Default configuration values
const (
	DefaultMaxDailyBookings    = 5
	DefaultSlotDurationMinutes = 60
)

// Default working hours
const (
	DefaultOpenTime  types.TimeString = "09:00"
	DefaultCloseTime types.TimeString = "17:00"
)

// Business validation constants
const (
	MinDailyBookings            = 1
	MaxDailyBookings            = 100
	MinSlotDurationMinutes      = 15
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses перечень допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
