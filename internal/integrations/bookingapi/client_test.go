package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/session"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, nopLogger{})
	return client, server
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestGetCapacity(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schedule/config", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ScheduleConfig{
			MaxDailyBookings:    7,
			OpenTime:            "09:00",
			CloseTime:           "17:00",
			SlotDurationMinutes: 60,
		})
	}))
	defer server.Close()

	capacity, err := client.GetCapacity(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, capacity)
}

func TestGetDaySlots(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schedule/slots", r.URL.Path)
		assert.Equal(t, "2026-09-15", r.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode(DaySlots{
			Date:  "2026-09-15",
			Slots: []string{"09:00", "10:00", "11:00"},
		})
	}))
	defer server.Close()

	slots, err := client.GetDaySlots(context.Background(), testDate())

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slots)
}

func TestGetBookingsByDate(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("includeCancelled"))
		_ = json.NewEncoder(w).Encode(BookingList{
			Bookings: []Booking{
				{
					ID:           1,
					TrackingHash: "aa5c63de-1f31-4c55-8f0a-2a7f0a1e9d11",
					CustomerID:   100,
					ServiceID:    1,
					BookingDate:  "2026-09-15",
					StartTime:    "09:00",
					Status:       "confirmed",
					CustomerName: "Иван Петров",
					ServiceName:  "Замена масла",
				},
			},
			Total: 1,
		})
	}))
	defer server.Close()

	bookings, err := client.GetBookingsByDate(context.Background(), testDate(), false)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, types.TimeString("09:00"), bookings[0].StartTime)
	assert.Equal(t, testDate(), bookings[0].BookingDate)
}

func TestCreateBooking(t *testing.T) {
	input := session.CreateBookingInput{
		CustomerID:   100,
		ServiceID:    1,
		BookingDate:  testDate(),
		StartTime:    types.TimeString("10:00"),
		CustomerName: "Иван Петров",
		ServiceName:  "Замена масла",
	}

	t.Run("успешное создание", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/bookings", r.URL.Path)

			var req CreateBookingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "2026-09-15", req.BookingDate)
			assert.Equal(t, "10:00", req.StartTime)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Booking{
				ID:           42,
				TrackingHash: "bb5c63de-1f31-4c55-8f0a-2a7f0a1e9d22",
				CustomerID:   req.CustomerID,
				ServiceID:    req.ServiceID,
				BookingDate:  req.BookingDate,
				StartTime:    req.StartTime,
				Status:       "confirmed",
				CustomerName: req.CustomerName,
				ServiceName:  req.ServiceName,
			})
		}))
		defer server.Close()

		booking, err := client.CreateBooking(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, int64(42), booking.ID)
		assert.Equal(t, domain.StatusConfirmed, booking.Status)
	})

	t.Run("409 транслируется в ErrCapacityExceeded", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "дневной лимит записей исчерпан"})
		}))
		defer server.Close()

		_, err := client.CreateBooking(context.Background(), input)

		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrCapacityExceeded)
	})

	t.Run("400 транслируется в ErrValidation", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "некорректное тело запроса"})
		}))
		defer server.Close()

		_, err := client.CreateBooking(context.Background(), input)

		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrValidation)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("успешное обновление", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/v1/bookings/42/status", r.URL.Path)

			var req UpdateStatusRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "cancelled", req.Status)

			_ = json.NewEncoder(w).Encode(Booking{
				ID:          42,
				BookingDate: "2026-09-15",
				StartTime:   "10:00",
				Status:      "cancelled",
			})
		}))
		defer server.Close()

		booking, err := client.UpdateBookingStatus(context.Background(), 42, domain.StatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, booking.Status)
	})

	t.Run("404 транслируется в ErrBookingNotFound", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "запись не найдена"})
		}))
		defer server.Close()

		_, err := client.UpdateBookingStatus(context.Background(), 99, domain.StatusCancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrBookingNotFound)
	})

	t.Run("409 транслируется в ErrInvalidTransition", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: "недопустимый переход статуса"})
		}))
		defer server.Close()

		_, err := client.UpdateBookingStatus(context.Background(), 42, domain.StatusConfirmed)

		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrInvalidTransition)
	})

	t.Run("5xx оборачивается в ErrInvalidResponse", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := client.UpdateBookingStatus(context.Background(), 42, domain.StatusCancelled)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
