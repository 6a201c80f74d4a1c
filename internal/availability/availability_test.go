package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.TimeString(v)
	}
	return result
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, Status: status}
}

func TestComputeAvailableSlots(t *testing.T) {
	raw := slots("09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00")

	tests := []struct {
		name     string
		raw      []types.TimeString
		capacity int
		active   int
		want     []types.TimeString
	}{
		{
			name:     "свободный день: префикс длиной в ёмкость",
			raw:      raw,
			capacity: 5,
			active:   0,
			want:     slots("09:00", "10:00", "11:00", "12:00", "13:00"),
		},
		{
			name:     "частично занятый день",
			raw:      raw,
			capacity: 5,
			active:   3,
			want:     slots("09:00", "10:00"),
		},
		{
			name:     "ёмкость исчерпана",
			raw:      raw,
			capacity: 5,
			active:   5,
			want:     slots(),
		},
		{
			name:     "перебронирование после снижения лимита",
			raw:      raw,
			capacity: 3,
			active:   5,
			want:     slots(),
		},
		{
			name:     "сырых слотов меньше остаточной ёмкости",
			raw:      slots("09:00", "10:00"),
			capacity: 5,
			active:   0,
			want:     slots("09:00", "10:00"),
		},
		{
			name:     "пустой список сырых слотов",
			raw:      slots(),
			capacity: 5,
			active:   0,
			want:     slots(),
		},
		{
			name:     "нулевая ёмкость",
			raw:      raw,
			capacity: 0,
			active:   0,
			want:     slots(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAvailableSlots(tt.raw, tt.capacity, tt.active)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	raw := slots("09:00", "10:00", "11:00")

	first := ComputeAvailableSlots(raw, 2, 0)
	second := ComputeAvailableSlots(raw, 2, 0)

	assert.Equal(t, first, second)
}

func TestComputeAvailableSlots_DoesNotAliasInput(t *testing.T) {
	raw := slots("09:00", "10:00", "11:00")

	got := ComputeAvailableSlots(raw, 2, 0)
	got[0] = types.TimeString("23:59")

	assert.Equal(t, types.TimeString("09:00"), raw[0])
}

func TestCountActive(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, domain.StatusConfirmed),
		booking(2, domain.StatusPending),
		booking(3, domain.StatusCancelled),
		booking(4, domain.StatusConfirmed),
	}

	// Отменённые бронирования не занимают ёмкость
	assert.Equal(t, 3, CountActive(bookings))
	assert.Equal(t, 0, CountActive(nil))
}

func TestGenerateDaySlots(t *testing.T) {
	t.Run("стандартный рабочий день", func(t *testing.T) {
		got, err := GenerateDaySlots("09:00", "17:00", 60)
		require.NoError(t, err)
		assert.Equal(t, slots("09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"), got)
	})

	t.Run("последний слот должен целиком помещаться до закрытия", func(t *testing.T) {
		got, err := GenerateDaySlots("09:00", "10:30", 60)
		require.NoError(t, err)
		assert.Equal(t, slots("09:00"), got)
	})

	t.Run("шаг 30 минут", func(t *testing.T) {
		got, err := GenerateDaySlots("09:00", "11:00", 30)
		require.NoError(t, err)
		assert.Equal(t, slots("09:00", "09:30", "10:00", "10:30"), got)
	})

	t.Run("открытие равно закрытию", func(t *testing.T) {
		got, err := GenerateDaySlots("09:00", "09:00", 60)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("неположительный шаг", func(t *testing.T) {
		_, err := GenerateDaySlots("09:00", "17:00", 0)
		assert.Error(t, err)
	})

	t.Run("некорректное время открытия", func(t *testing.T) {
		_, err := GenerateDaySlots("25:00", "17:00", 60)
		assert.Error(t, err)
	})
}
