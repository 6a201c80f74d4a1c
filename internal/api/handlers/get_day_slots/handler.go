package get_day_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

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

// Handle GET /api/v1/schedule/slots
// Query params: date (required, YYYY-MM-DD)
// Возвращает сырые слоты рабочего дня без учёта занятости
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.DaySlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := DaySlotsResponse{
		Date:  dateStr,
		Slots: make([]string, len(slots)),
	}
	for i, slot := range slots {
		response.Slots[i] = slot.String()
	}

	h.logger.Info("GET /schedule/slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
