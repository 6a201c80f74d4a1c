package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/scheduleconfig"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByDateWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		ID:                  1,
		MaxDailyBookings:    5,
		OpenTime:            types.TimeString("09:00"),
		CloseTime:           types.TimeString("17:00"),
		SlotDurationMinutes: 60,
	}
}

func bookingsWithStatuses(statuses ...domain.BookingStatus) []*domain.Booking {
	bookings := make([]*domain.Booking, len(statuses))
	for i, status := range statuses {
		bookings[i] = &domain.Booking{ID: int64(i + 1), Status: status}
	}
	return bookings
}

func newTestUseCase(bookingRepo *MockBookingRepository, configRepo *MockConfigRepository) *UseCase {
	uc := NewUseCase(bookingRepo, configRepo, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_TruncatesByRemainingCapacity(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).
		Return(bookingsWithStatuses(domain.StatusConfirmed, domain.StatusConfirmed, domain.StatusPending), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Capacity)
	assert.Equal(t, 3, resp.ActiveBookings)
	// 8 сырых слотов усечены до остаточной ёмкости 5-3=2
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, resp.Slots)
}

func TestExecute_CancelledBookingsDoNotTakeCapacity(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	// Две активные записи и две отменённые: заняты только два места
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).
		Return(bookingsWithStatuses(
			domain.StatusConfirmed,
			domain.StatusCancelled,
			domain.StatusConfirmed,
			domain.StatusCancelled,
		), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.ActiveBookings)
	assert.Len(t, resp.Slots, 3)
}

func TestExecute_FullDay(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).
		Return(bookingsWithStatuses(
			domain.StatusConfirmed,
			domain.StatusConfirmed,
			domain.StatusConfirmed,
			domain.StatusConfirmed,
			domain.StatusConfirmed,
		), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	bookingRepo.AssertNotCalled(t, "GetByDateWithFilter", mock.Anything, mock.Anything)
}

func TestExecute_DefaultConfigWhenMissing(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(nil, scheduleconfig.ErrConfigNotFound)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxDailyBookings, resp.Capacity)
	assert.Len(t, resp.Slots, domain.DefaultMaxDailyBookings)
}

func TestExecute_ZeroDate(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	_, err := uc.Execute(context.Background(), &Request{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
