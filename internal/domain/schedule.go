package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ScheduleConfig represents the shop's booking configuration: working
// hours, the slot step and the daily capacity ceiling. The shop runs a
// single shared capacity pool, so MaxDailyBookings bounds the number of
// non-cancelled bookings on any calendar date.
type ScheduleConfig struct {
	ID                  int64
	MaxDailyBookings    int
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsWithinWorkingHours reports whether a slot starting at t and lasting
// SlotDurationMinutes fits between OpenTime and CloseTime.
func (c *ScheduleConfig) IsWithinWorkingHours(t types.TimeString) bool {
	if t.IsBefore(c.OpenTime) {
		return false
	}
	end, err := t.AddMinutes(c.SlotDurationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(c.CloseTime)
}

// DefaultScheduleConfig returns the process-wide defaults used before a
// real configuration row has been loaded or created.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		MaxDailyBookings:    DefaultMaxDailyBookings,
		OpenTime:            DefaultOpenTime,
		CloseTime:           DefaultCloseTime,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
