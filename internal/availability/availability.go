// Package availability содержит чистую логику расчёта доступных слотов.
// Функции не имеют побочных эффектов и идемпотентны: повторный вызов с
// теми же аргументами всегда даёт тот же результат, что позволяет
// безопасно перепроверять доступность перед записью.
package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ComputeAvailableSlots возвращает префикс rawSlots длиной
// max(0, capacity - activeBookingCount) с сохранением исходного порядка.
// Ёмкость обеспечивается усечением списка кандидатов, а не отказом на
// этапе записи: презентационный слой всегда видит актуальное "что можно
// выбрать". Слоты никогда не придумываются: если rawSlots короче
// остаточной ёмкости, возвращаются все rawSlots.
func ComputeAvailableSlots(rawSlots []types.TimeString, capacity int, activeBookingCount int) []types.TimeString {
	remaining := capacity - activeBookingCount
	if remaining <= 0 {
		return []types.TimeString{}
	}
	if remaining > len(rawSlots) {
		remaining = len(rawSlots)
	}

	// Копируем, чтобы вызывающая сторона не могла изменить исходный список
	result := make([]types.TimeString, remaining)
	copy(result, rawSlots[:remaining])
	return result
}

// CountActive подсчитывает бронирования, занимающие дневную ёмкость.
// Отменённые бронирования ёмкость не занимают.
func CountActive(bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking.IsActive() {
			count++
		}
	}
	return count
}

// GenerateDaySlots генерирует сырые слоты рабочего дня: тики от времени
// открытия до закрытия с фиксированным шагом stepMinutes. Слот попадает в
// список, только если он целиком заканчивается не позже времени закрытия.
func GenerateDaySlots(openTime, closeTime types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("availability: step must be positive, got %d", stepMinutes)
	}
	if err := openTime.Validate(); err != nil {
		return nil, err
	}
	if err := closeTime.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}
		// AddMinutes переходит через полночь: защищаемся от зацикливания
		if !slotEnd.IsAfter(current) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}
