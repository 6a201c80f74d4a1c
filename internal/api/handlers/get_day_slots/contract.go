package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type ScheduleService interface {
	DaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
