package get_schedule_config

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// ScheduleConfigResponse HTTP response model
// Поле maxDailyBookings - дневная ёмкость, которую читает сессионный слой
type ScheduleConfigResponse struct {
	MaxDailyBookings    int    `json:"maxDailyBookings"`
	OpenTime            string `json:"openTime"`
	CloseTime           string `json:"closeTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
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
