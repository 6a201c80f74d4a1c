package create_booking

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

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTime детерминированный источник времени
type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// fixedHash детерминированный генератор трекинг-хэшей
type fixedHash struct {
	hash string
}

func (f fixedHash) NewHash() string {
	return f.hash
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

func confirmedBookings(n int) []*domain.Booking {
	bookings := make([]*domain.Booking, n)
	for i := range bookings {
		bookings[i] = &domain.Booking{ID: int64(i + 1), Status: domain.StatusConfirmed}
	}
	return bookings
}

func validRequest() *Request {
	return &Request{
		CustomerID:   100,
		VehicleID:    10,
		ServiceID:    1,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("10:00"),
		CustomerName: "Иван Петров",
		ServiceName:  "Замена масла",
	}
}

func newTestUseCase(bookingRepo *MockBookingRepository, configRepo *MockConfigRepository) *UseCase {
	uc := NewUseCase(bookingRepo, configRepo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	uc.hashProvider = fixedHash{hash: "7f9b2c1a-55e0-4a8f-9c3d-6d2b1e0f4a77"}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).Return(confirmedBookings(3), nil)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusConfirmed &&
			b.TrackingHash == "7f9b2c1a-55e0-4a8f-9c3d-6d2b1e0f4a77" &&
			b.StartTime == types.TimeString("10:00")
	})).Return(&domain.Booking{
		ID:           42,
		TrackingHash: "7f9b2c1a-55e0-4a8f-9c3d-6d2b1e0f4a77",
		CustomerID:   100,
		VehicleID:    10,
		ServiceID:    1,
		BookingDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("10:00"),
		Status:       domain.StatusConfirmed,
		CustomerName: "Иван Петров",
		ServiceName:  "Замена масла",
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "7f9b2c1a-55e0-4a8f-9c3d-6d2b1e0f4a77", resp.TrackingHash)
	bookingRepo.AssertExpectations(t)
	configRepo.AssertExpectations(t)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	// Ёмкость 5, все пять мест заняты
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).Return(confirmedBookings(5), nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_CancelledBookingsFreeCapacity(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	// Четыре активных и одна отменённая: место есть
	bookings := confirmedBookings(4)
	bookings = append(bookings, &domain.Booking{ID: 5, Status: domain.StatusCancelled})

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).Return(bookings, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID:     43,
		Status: domain.StatusConfirmed,
	}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestExecute_DateInPast(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)

	req := validRequest()
	req.Date = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	configRepo.On("Get", mock.Anything).Return(testConfig(), nil)

	// 10:30 не является тиком часового расписания 09:00-17:00
	req := validRequest()
	req.StartTime = types.TimeString("10:30")

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"нет клиента", func(req *Request) { req.CustomerID = 0 }},
		{"нет услуги", func(req *Request) { req.ServiceID = 0 }},
		{"нет имени клиента", func(req *Request) { req.CustomerName = "" }},
		{"нет названия услуги", func(req *Request) { req.ServiceName = "" }},
		{"нулевая дата", func(req *Request) { req.Date = time.Time{} }},
		{"пустое время", func(req *Request) { req.StartTime = "" }},
		{"некорректный формат времени", func(req *Request) { req.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := new(MockBookingRepository)
			configRepo := new(MockConfigRepository)
			uc := newTestUseCase(bookingRepo, configRepo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_DefaultConfigWhenMissing(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	configRepo := new(MockConfigRepository)
	uc := newTestUseCase(bookingRepo, configRepo)

	// Конфигурация ещё не сохранена: действуют значения по умолчанию
	configRepo.On("Get", mock.Anything).Return(nil, scheduleconfig.ErrConfigNotFound)
	bookingRepo.On("GetByDateWithFilter", mock.Anything, mock.Anything).Return(confirmedBookings(0), nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID:     44,
		Status: domain.StatusConfirmed,
	}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}
