package update_schedule_config

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UpdateScheduleConfigRequest HTTP request model
type UpdateScheduleConfigRequest struct {
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ScheduleConfigResponse HTTP response model
type ScheduleConfigResponse struct {
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToDomainConfig конвертирует HTTP запрос в domain.ScheduleConfig
func (r *UpdateScheduleConfigRequest) ToDomainConfig() (*domain.ScheduleConfig, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleConfig{
		MaxDailyBookings:    r.MaxDailyBookings,
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}, nil
}

// FromDomainConfig конвертирует domain.ScheduleConfig в HTTP response
func FromDomainConfig(config *domain.ScheduleConfig) *ScheduleConfigResponse {
	return &ScheduleConfigResponse{
		MaxDailyBookings:    config.MaxDailyBookings,
		OpenTime:            config.OpenTime.String(),
		CloseTime:           config.CloseTime.String(),
		SlotDurationMinutes: config.SlotDurationMinutes,
	}
}
