package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	configRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/scheduleconfig"
)

// UseCase use case для создания бронирования
// Это авторитетная точка контроля ёмкости: клиентская проверка в сессии
// носит рекомендательный характер, а финальное слово остаётся за
// сериализуемой транзакцией здесь
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	hashProvider HashProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		hashProvider: &uuidHashProvider{},
		logger:       logger,
	}
}

// uuidHashProvider генерирует публичные трекинг-хэши на основе UUID v4
type uuidHashProvider struct{}

func (p *uuidHashProvider) NewHash() string {
	return uuid.NewString()
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два конкурентных запроса не могут оба пройти проверку ёмкости на
// последнем свободном месте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, vehicle=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.VehicleID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем конфигурацию расписания
		config, err := uc.configRepo.Get(txCtx)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = domain.DefaultScheduleConfig()
			uc.logger.Info("CreateBooking: using default schedule config")
		}

		// 3.2. Валидация даты
		if err := validateDate(req.Date, now); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 3.3. Проверяем, что запрошенное время - один из слотов рабочего дня
		if err := validateTimeSlot(req.StartTime, config); err != nil {
			uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
			return err
		}

		// 3.4. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.DayBookingsFilter{
			Date:             req.Date,
			IncludeCancelled: false, // Отменённые бронирования ёмкость не занимают
		}

		bookings, err := uc.bookingRepo.GetByDateWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.5. Проверяем дневную ёмкость
		activeCount := availability.CountActive(bookings)
		if activeCount >= config.MaxDailyBookings {
			uc.logger.Warn("CreateBooking: capacity exceeded for %s, %d/%d bookings taken",
				req.Date.Format(domain.DateFormat), activeCount, config.MaxDailyBookings)
			return ErrCapacityExceeded
		}

		uc.logger.Info("CreateBooking: capacity ok for %s, %d/%d bookings taken",
			req.Date.Format(domain.DateFormat), activeCount, config.MaxDailyBookings)

		// 3.6. Создаем бронирование с денормализацией данных
		// Статус сразу confirmed: pending зарезервирован под будущий
		// workflow подтверждения заявок
		booking := &domain.Booking{
			TrackingHash: uc.hashProvider.NewHash(),
			CustomerID:   req.CustomerID,
			VehicleID:    req.VehicleID,
			ServiceID:    req.ServiceID,
			BookingDate:  req.Date,
			StartTime:    req.StartTime,
			Status:       domain.StatusConfirmed,
			// Денормализация данных клиента и услуги
			CustomerName: req.CustomerName,
			ServiceName:  req.ServiceName,
			// Денормализация данных автомобиля
			VehicleMake:         req.VehicleMake,
			VehicleModel:        req.VehicleModel,
			VehicleLicensePlate: req.VehiclePlate,
			// Заметки
			Notes: req.Notes,
		}

		// 3.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, hash=%s", result.ID, result.TrackingHash)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		TrackingHash: result.TrackingHash,
		CustomerID:   result.CustomerID,
		VehicleID:    result.VehicleID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		Status:       string(result.Status),
		CustomerName: result.CustomerName,
		ServiceName:  result.ServiceName,
		VehicleMake:  result.VehicleMake,
		VehicleModel: result.VehicleModel,
		VehiclePlate: result.VehicleLicensePlate,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
