package schedule

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

func (m *MockConfigRepository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	args := m.Called(ctx, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleConfig), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		MaxDailyBookings:    10,
		OpenTime:            types.TimeString("08:00"),
		CloseTime:           types.TimeString("18:00"),
		SlotDurationMinutes: 30,
	}
}

func TestGetConfig(t *testing.T) {
	t.Run("конфигурация сохранена", func(t *testing.T) {
		repo := new(MockConfigRepository)
		svc := NewService(repo, nopLogger{})

		repo.On("Get", mock.Anything).Return(validConfig(), nil)

		config, err := svc.GetConfig(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 10, config.MaxDailyBookings)
	})

	t.Run("без сохранённой конфигурации действуют значения по умолчанию", func(t *testing.T) {
		repo := new(MockConfigRepository)
		svc := NewService(repo, nopLogger{})

		repo.On("Get", mock.Anything).Return(nil, scheduleconfig.ErrConfigNotFound)

		config, err := svc.GetConfig(context.Background())

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultMaxDailyBookings, config.MaxDailyBookings)
		assert.Equal(t, domain.DefaultOpenTime, config.OpenTime)
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Run("успешное сохранение", func(t *testing.T) {
		repo := new(MockConfigRepository)
		svc := NewService(repo, nopLogger{})

		config := validConfig()
		repo.On("Upsert", mock.Anything, config).Return(config, nil)

		_, err := svc.UpdateConfig(context.Background(), config)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		mutate  func(config *domain.ScheduleConfig)
		wantErr error
	}{
		{
			name:    "нулевая ёмкость",
			mutate:  func(c *domain.ScheduleConfig) { c.MaxDailyBookings = 0 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "ёмкость выше потолка",
			mutate:  func(c *domain.ScheduleConfig) { c.MaxDailyBookings = 101 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name:    "слишком короткий слот",
			mutate:  func(c *domain.ScheduleConfig) { c.SlotDurationMinutes = 5 },
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name:    "открытие позже закрытия",
			mutate:  func(c *domain.ScheduleConfig) { c.OpenTime, c.CloseTime = c.CloseTime, c.OpenTime },
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "некорректное время открытия",
			mutate:  func(c *domain.ScheduleConfig) { c.OpenTime = "25:00" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockConfigRepository)
			svc := NewService(repo, nopLogger{})

			config := validConfig()
			tt.mutate(config)

			_, err := svc.UpdateConfig(context.Background(), config)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestDaySlots(t *testing.T) {
	repo := new(MockConfigRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Get", mock.Anything).Return(&domain.ScheduleConfig{
		MaxDailyBookings:    5,
		OpenTime:            types.TimeString("09:00"),
		CloseTime:           types.TimeString("12:00"),
		SlotDurationMinutes: 60,
	}, nil)

	slots, err := svc.DaySlots(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slots)
}
