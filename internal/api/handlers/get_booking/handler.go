package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор записи"
	msgMissingTrackingRef = "номер для отслеживания обязателен"
	msgBookingNotFound    = "запись не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{bookingId} - Invalid booking ID: %v", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId} - Booking retrieved successfully: id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleByTrackingHash GET /api/v1/bookings/track/{trackingHash}
// Публичный поиск записи по номеру отслеживания, без авторизации
func (h *Handler) HandleByTrackingHash(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash := vars["trackingHash"]
	if hash == "" {
		h.logger.Warn("GET /bookings/track/{trackingHash} - Missing tracking hash")
		handlers.RespondBadRequest(w, msgMissingTrackingRef)
		return
	}

	booking, err := h.service.GetByTrackingHash(r.Context(), hash)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/track/{trackingHash} - Booking not found: hash=%s", hash)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/track/{trackingHash} - Failed to get booking: hash=%s, error=%v", hash, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/track/{trackingHash} - Booking retrieved successfully: hash=%s", hash)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
