package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Session контроллер пользовательской сессии записи.
// Держит снимок данных на выбранную дату (записи, доступные слоты,
// ёмкость) и проводит все мутации через Store. Проверка ёмкости на
// клиенте носит рекомендательный характер: окончательное решение
// принимает Store внутри транзакции
type Session struct {
	store        Store
	logger       Logger
	timeProvider TimeProvider

	mu sync.Mutex

	// generation растёт при каждой загрузке данных на дату:
	// ответы с устаревшим номером поколения отбрасываются
	generation uint64

	capacity       int
	selectedDate   time.Time
	bookings       []*domain.Booking
	availableSlots []types.TimeString
	loading        bool
	lastError      error

	notifications []Notification
	nextNotifyID  int64
	notifyTTL     time.Duration
}

// New создает новую сессию с ёмкостью по умолчанию,
// пока реальная не загружена через LoadCapacity
func New(store Store, logger Logger) *Session {
	return &Session{
		store:        store,
		logger:       logger,
		timeProvider: RealTimeProvider{},
		capacity:     domain.DefaultMaxDailyBookings,
		notifyTTL:    DefaultNotificationTTL,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Session) WithTimeProvider(tp TimeProvider) *Session {
	s.timeProvider = tp
	return s
}

// LoadCapacity загружает дневной лимит записей.
// При сбое прежнее значение сохраняется
func (s *Session) LoadCapacity(ctx context.Context) error {
	s.setLoading(true)
	capacity, err := s.store.GetCapacity(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		wrapped := fmt.Errorf("%w: load capacity: %v", ErrStore, err)
		s.lastError = wrapped
		s.pushNotificationLocked("Ошибка загрузки", "не удалось загрузить лимит записей", SeverityError)
		s.logger.Error("LoadCapacity: store failure: %v", err)
		return wrapped
	}

	s.capacity = capacity
	s.lastError = nil
	s.logger.Info("LoadCapacity: capacity=%d", capacity)
	return nil
}

// LoadBookingsForDate загружает записи на дату, целиком заменяя текущий
// список. При сбое прежний список сохраняется
func (s *Session) LoadBookingsForDate(ctx context.Context, date time.Time) error {
	gen := s.beginDateLoad()

	bookings, err := s.store.GetBookingsByDate(ctx, date, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// Устаревший ответ: состоянием уже владеет более поздняя загрузка
		s.logger.Warn("LoadBookingsForDate: stale response discarded: date=%s", date.Format(domain.DateFormat))
		return nil
	}
	s.loading = false

	if err != nil {
		wrapped := fmt.Errorf("%w: load bookings: %v", ErrStore, err)
		s.lastError = wrapped
		s.pushNotificationLocked("Ошибка загрузки", "не удалось загрузить записи на дату", SeverityError)
		s.logger.Error("LoadBookingsForDate: store failure: date=%s, error=%v", date.Format(domain.DateFormat), err)
		return wrapped
	}

	s.selectedDate = date
	s.bookings = bookings
	s.lastError = nil
	s.logger.Info("LoadBookingsForDate: date=%s, count=%d", date.Format(domain.DateFormat), len(bookings))
	return nil
}

// CheckAvailability загружает слоты и записи на дату параллельно и
// вычисляет доступные слоты. При сбое любого из запросов возвращается
// пустой список: безопасное вырожденное состояние, запрещающее запись.
// Если за время проверки началась более поздняя загрузка, результат
// отбрасывается и возвращается ErrSuperseded
func (s *Session) CheckAvailability(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	gen := s.beginDateLoad()

	var (
		wg          sync.WaitGroup
		slots       []types.TimeString
		slotsErr    error
		bookings    []*domain.Booking
		bookingsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		slots, slotsErr = s.store.GetDaySlots(ctx, date)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = s.store.GetBookingsByDate(ctx, date, false)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Warn("CheckAvailability: stale response discarded: date=%s", date.Format(domain.DateFormat))
		return nil, ErrSuperseded
	}
	s.loading = false

	if slotsErr != nil || bookingsErr != nil {
		err := slotsErr
		if err == nil {
			err = bookingsErr
		}
		wrapped := fmt.Errorf("%w: check availability: %v", ErrStore, err)
		s.lastError = wrapped
		s.availableSlots = []types.TimeString{}
		s.pushNotificationLocked("Ошибка загрузки", "не удалось проверить доступность", SeverityError)
		s.logger.Error("CheckAvailability: store failure: date=%s, error=%v", date.Format(domain.DateFormat), err)
		return []types.TimeString{}, wrapped
	}

	active := availability.CountActive(bookings)
	available := availability.ComputeAvailableSlots(slots, s.capacity, active)

	s.selectedDate = date
	s.bookings = bookings
	s.availableSlots = available
	s.lastError = nil

	s.logger.Info("CheckAvailability: date=%s, capacity=%d, active=%d, available=%d",
		date.Format(domain.DateFormat), s.capacity, active, len(available))
	return copySlots(available), nil
}

// CreateBooking создает запись: валидация, клиентская проверка
// доступности, запись через Store, добавление результата в снимок.
// Ошибка и записывается в lastError, и возвращается вызывающему
func (s *Session) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := validateInput(input); err != nil {
		s.recordError("Ошибка валидации", "проверьте заполнение обязательных полей", err)
		return nil, err
	}

	// Рекомендательная проверка до записи: пустой список доступных
	// слотов означает исчерпанный лимит. Вытесненную параллельной
	// загрузкой проверку повторяем один раз: её пустой результат не
	// говорит о лимите
	available, err := s.CheckAvailability(ctx, input.BookingDate)
	if errors.Is(err, ErrSuperseded) {
		available, err = s.CheckAvailability(ctx, input.BookingDate)
	}
	if errors.Is(err, ErrSuperseded) {
		s.recordError("Данные обновились", "проверка доступности устарела, повторите попытку", err)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		err := fmt.Errorf("%w: date=%s", ErrCapacityExceeded, input.BookingDate.Format(domain.DateFormat))
		s.recordError("Лимит исчерпан", "на выбранную дату нет свободных слотов", err)
		return nil, err
	}

	s.setLoading(true)
	booking, err := s.store.CreateBooking(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		wrapped := s.wrapStoreError("create booking", err)
		s.lastError = wrapped
		s.pushNotificationLocked("Ошибка записи", "не удалось создать запись", SeverityError)
		s.logger.Error("CreateBooking: store failure: %v", err)
		return nil, wrapped
	}

	// Пополняем снимок без повторной загрузки: запись занимает
	// последний доступный слот
	if sameDate(s.selectedDate, input.BookingDate) {
		s.bookings = append(s.bookings, booking)
		if len(s.availableSlots) > 0 {
			s.availableSlots = s.availableSlots[:len(s.availableSlots)-1]
		}
	}
	s.lastError = nil
	s.pushNotificationLocked("Запись создана", fmt.Sprintf("запись на %s в %s подтверждена",
		booking.BookingDate.Format(domain.DateFormat), booking.StartTime), SeveritySuccess)

	s.logger.Info("CreateBooking: booking created: id=%d, date=%s, time=%s",
		booking.ID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	return booking, nil
}

// UpdateBookingStatus переводит запись в новый статус и заменяет запись
// в снимке по id. Локальная проверка таблицы переходов рекомендательная
// и работает только для записей из снимка: окончательное решение за
// Store, который проверяет переход для любой записи
func (s *Session) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	if current, ok := s.findBookingLocked(bookingID); ok && !current.CanTransitionTo(status) {
		err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
		s.lastError = err
		s.pushNotificationLocked("Ошибка статуса", "недопустимый переход статуса", SeverityError)
		s.mu.Unlock()
		s.logger.Warn("UpdateBookingStatus: transition rejected: id=%d, %s -> %s", bookingID, current.Status, status)
		return nil, err
	}
	s.loading = true
	s.mu.Unlock()

	updated, err := s.store.UpdateBookingStatus(ctx, bookingID, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		wrapped := s.wrapStoreError("update booking status", err)
		s.lastError = wrapped
		s.pushNotificationLocked("Ошибка статуса", "не удалось изменить статус записи", SeverityError)
		s.logger.Error("UpdateBookingStatus: store failure: id=%d, error=%v", bookingID, err)
		return nil, wrapped
	}

	for i, b := range s.bookings {
		if b.ID == updated.ID {
			s.bookings[i] = updated
			break
		}
	}
	s.lastError = nil
	s.pushNotificationLocked("Статус обновлён", fmt.Sprintf("запись #%d: %s", updated.ID, updated.Status), SeveritySuccess)

	s.logger.Info("UpdateBookingStatus: id=%d, status=%s", updated.ID, updated.Status)
	return updated, nil
}

// GetBookingByID ищет запись в текущем снимке, без обращения к Store
func (s *Session) GetBookingByID(bookingID int64) (*domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findBookingLocked(bookingID)
}

// Capacity текущее значение дневного лимита
func (s *Session) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// Bookings копия текущего списка записей
func (s *Session) Bookings() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AvailableSlots копия текущего списка доступных слотов
func (s *Session) AvailableSlots() []types.TimeString {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlots(s.availableSlots)
}

// Loading признак выполняющейся операции
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError последняя ошибка сессии, nil после успешной операции
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Notifications актуальные уведомления; истёкшие удаляются
func (s *Session) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	alive := s.notifications[:0]
	for _, n := range s.notifications {
		if !n.Expired(now) {
			alive = append(alive, n)
		}
	}
	s.notifications = alive

	out := make([]Notification, len(alive))
	copy(out, alive)
	return out
}

// DismissNotification убирает уведомление до истечения срока
func (s *Session) DismissNotification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// beginDateLoad выдает номер поколения новой загрузки на дату
func (s *Session) beginDateLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	return s.generation
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Session) recordError(title, message string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.pushNotificationLocked(title, message, SeverityError)
}

// wrapStoreError сохраняет бизнес-сентинелы Store, транспортные сбои
// оборачивает в ErrStore
func (s *Session) wrapStoreError(action string, err error) error {
	switch {
	case isBusinessError(err):
		return err
	default:
		return fmt.Errorf("%w: %s: %v", ErrStore, action, err)
	}
}

func (s *Session) findBookingLocked(bookingID int64) (*domain.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == bookingID {
			return b, true
		}
	}
	return nil, false
}

func (s *Session) pushNotificationLocked(title, message string, severity Severity) {
	now := s.timeProvider.Now()
	s.nextNotifyID++
	s.notifications = append(s.notifications, Notification{
		ID:        s.nextNotifyID,
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.notifyTTL),
	})
}

func copySlots(slots []types.TimeString) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	copy(out, slots)
	return out
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
