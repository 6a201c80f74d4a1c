package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidCapacity     = "некорректный дневной лимит записей"
	msgInvalidSlotDuration = "некорректная длительность слота"
	msgInvalidWorkingHours = "время открытия должно быть раньше времени закрытия"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/config
// Административная настройка: здесь меняется дневная ёмкость
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateScheduleConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	config, err := req.ToDomainConfig()
	if err != nil {
		h.logger.Warn("PUT /schedule/config - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	updated, err := h.service.UpdateConfig(r.Context(), config)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidCapacity):
			h.logger.Warn("PUT /schedule/config - Invalid capacity: %d", req.MaxDailyBookings)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, schedule.ErrInvalidSlotDuration):
			h.logger.Warn("PUT /schedule/config - Invalid slot duration: %d", req.SlotDurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidSlotDuration)

		case errors.Is(err, schedule.ErrInvalidWorkingHours):
			h.logger.Warn("PUT /schedule/config - Invalid working hours: open=%s, close=%s", req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/config - Config updated successfully: maxDailyBookings=%d",
		updated.MaxDailyBookings)
	handlers.RespondJSON(w, http.StatusOK, FromDomainConfig(updated))
}
