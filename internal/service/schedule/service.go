package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	configRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/scheduleconfig"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с конфигурацией расписания и сырыми слотами дня
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetConfig получает текущую конфигурацию расписания
// Если конфигурация ещё не сохранена, возвращает дефолтные значения
func (s *Service) GetConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetConfig: no config stored, using defaults")
			return domain.DefaultScheduleConfig(), nil
		}
		s.logger.Error("GetConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return config, nil
}

// UpdateConfig сохраняет новую конфигурацию расписания
// Это административная настройка: именно здесь меняется дневная ёмкость
func (s *Service) UpdateConfig(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	s.logger.Info("UpdateConfig: maxDailyBookings=%d, open=%s, close=%s, slotDuration=%d",
		config.MaxDailyBookings, config.OpenTime, config.CloseTime, config.SlotDurationMinutes)

	if err := validateConfig(config); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: config saved, id=%d", updated.ID)
	return updated, nil
}

// DaySlots возвращает сырые слоты рабочего дня на указанную дату:
// тики от открытия до закрытия с шагом slot_duration_minutes.
// Список не зависит от занятости - усечение по ёмкости делает
// usecase get_available_slots
func (s *Service) DaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	config, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := availability.GenerateDaySlots(config.OpenTime, config.CloseTime, config.SlotDurationMinutes)
	if err != nil {
		s.logger.Error("DaySlots: failed to generate slots for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: DaySlots - generate slots: %v", ErrInternal, err)
	}

	return slots, nil
}

// validateConfig проверяет бизнес-ограничения конфигурации
func validateConfig(config *domain.ScheduleConfig) error {
	if config.MaxDailyBookings < domain.MinDailyBookings || config.MaxDailyBookings > domain.MaxDailyBookings {
		return fmt.Errorf("%w: must be between %d and %d",
			ErrInvalidCapacity, domain.MinDailyBookings, domain.MaxDailyBookings)
	}

	if config.SlotDurationMinutes < domain.MinSlotDurationMinutes || config.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidSlotDuration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if err := config.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidInput, err)
	}
	if err := config.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidInput, err)
	}

	if !config.OpenTime.IsBefore(config.CloseTime) {
		return ErrInvalidWorkingHours
	}

	return nil
}
