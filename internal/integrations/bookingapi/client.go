package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/session"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Client клиент Booking API, реализует session.Store.
// Бизнес-ошибки транслируются в сентинелы пакета session,
// транспортные сбои оборачиваются в ErrInternal/ErrInvalidResponse
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCapacity получает дневной лимит записей из конфигурации расписания
func (c *Client) GetCapacity(ctx context.Context) (int, error) {
	endpoint := fmt.Sprintf("%s/api/v1/schedule/config", c.baseURL)

	var config ScheduleConfig
	if err := c.getJSON(ctx, endpoint, &config); err != nil {
		return 0, err
	}

	c.log.Info("GetCapacity: maxDailyBookings=%d", config.MaxDailyBookings)
	return config.MaxDailyBookings, nil
}

// GetDaySlots получает сырые слоты рабочего дня на дату
func (c *Client) GetDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	endpoint := fmt.Sprintf("%s/api/v1/schedule/slots?date=%s",
		c.baseURL, url.QueryEscape(date.Format(domain.DateFormat)))

	var daySlots DaySlots
	if err := c.getJSON(ctx, endpoint, &daySlots); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, len(daySlots.Slots))
	for _, raw := range daySlots.Slots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot %q: %v", ErrInvalidResponse, raw, err)
		}
		slots = append(slots, slot)
	}

	c.log.Info("GetDaySlots: date=%s, slots=%d", date.Format(domain.DateFormat), len(slots))
	return slots, nil
}

// GetBookingsByDate получает записи на дату
func (c *Client) GetBookingsByDate(ctx context.Context, date time.Time, includeCancelled bool) ([]*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bookings?date=%s&includeCancelled=%t",
		c.baseURL, url.QueryEscape(date.Format(domain.DateFormat)), includeCancelled)

	var list BookingList
	if err := c.getJSON(ctx, endpoint, &list); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(list.Bookings))
	for i := range list.Bookings {
		booking, err := list.Bookings[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		bookings = append(bookings, booking)
	}

	c.log.Info("GetBookingsByDate: date=%s, count=%d", date.Format(domain.DateFormat), len(bookings))
	return bookings, nil
}

// CreateBooking создает запись. Ответ 409 означает исчерпанный
// дневной лимит и транслируется в session.ErrCapacityExceeded
func (c *Client) CreateBooking(ctx context.Context, input session.CreateBookingInput) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)

	body, err := json.Marshal(fromSessionInput(input))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", session.ErrValidation, readErrorMessage(resp.Body))
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", session.ErrCapacityExceeded, readErrorMessage(resp.Body))
	default:
		return nil, unexpectedStatus(resp)
	}

	var created Booking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	booking, err := created.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateBooking: created id=%d, date=%s, time=%s", booking.ID, created.BookingDate, created.StartTime)
	return booking, nil
}

// UpdateBookingStatus переводит запись в новый статус
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bookings/%d/status", c.baseURL, bookingID)

	body, err := json.Marshal(UpdateStatusRequest{Status: string(status)})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", session.ErrValidation, readErrorMessage(resp.Body))
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: id=%d", session.ErrBookingNotFound, bookingID)
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", session.ErrInvalidTransition, readErrorMessage(resp.Body))
	default:
		return nil, unexpectedStatus(resp)
	}

	var updated Booking
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	booking, err := updated.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("UpdateBookingStatus: id=%d, status=%s", booking.ID, booking.Status)
	return booking, nil
}

// getJSON выполняет GET запрос и декодирует ответ со статусом 200
func (c *Client) getJSON(ctx context.Context, endpoint string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readErrorMessage извлекает текст ошибки из тела ответа
func readErrorMessage(body io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil || errResp.Error == "" {
		return "unknown error"
	}
	return errResp.Error
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
