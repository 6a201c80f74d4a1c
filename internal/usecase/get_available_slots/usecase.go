package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	configRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/scheduleconfig"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат - префикс сырых слотов дня длиной (ёмкость - активные
// бронирования): презентационный слой всегда видит точное "что можно выбрать"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию расписания
	config, err := uc.configRepo.Get(ctx)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultScheduleConfig()
		uc.logger.Info("GetAvailableSlots: using default schedule config")
	}

	// 4. Для прошедших дат слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:     req.Date,
			Capacity: config.MaxDailyBookings,
			Slots:    []types.TimeString{},
		}, nil
	}

	// 5. Генерируем сырые слоты рабочего дня
	rawSlots, err := availability.GenerateDaySlots(config.OpenTime, config.CloseTime, config.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate day slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate day slots: %v", ErrInternal, err)
	}

	// 6. Получаем активные бронирования на эту дату
	// Отменённые бронирования ёмкость не занимают
	filter := domain.DayBookingsFilter{
		Date:             req.Date,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetByDateWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Усекаем сырые слоты по остаточной ёмкости
	activeCount := availability.CountActive(bookings)
	slots := availability.ComputeAvailableSlots(rawSlots, config.MaxDailyBookings, activeCount)

	uc.logger.Info("GetAvailableSlots: %d slots available for %s (%d/%d bookings taken)",
		len(slots), req.Date.Format(domain.DateFormat), activeCount, config.MaxDailyBookings)

	return &Response{
		Date:           req.Date,
		Capacity:       config.MaxDailyBookings,
		ActiveBookings: activeCount,
		Slots:          slots,
	}, nil
}
