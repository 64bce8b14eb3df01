package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

func reservationsAt(times ...types.TimeString) []*domain.Reservation {
	res := make([]*domain.Reservation, 0, len(times))
	for _, t := range times {
		res = append(res, &domain.Reservation{Time: t})
	}
	return res
}

func TestSaturatedTimes(t *testing.T) {
	// Вместимость 2: время насыщено начиная со второй брони
	saturated := saturatedTimes(reservationsAt("20:00", "20:00", "21:00"), 2)
	assert.Equal(t, []types.TimeString{"20:00"}, saturated)

	assert.Empty(t, saturatedTimes(reservationsAt("20:00"), 2))
	assert.Empty(t, saturatedTimes(nil, 2))

	// Нулевая вместимость не дает насыщенных времен
	assert.Empty(t, saturatedTimes(reservationsAt("20:00"), 0))
}

func TestAvailableTimes_NoReservations(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	times, err := availableTimes(schedule, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, schedule.Catalog, times)
}

func TestAvailableTimes_BelowCapacity(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	// 4 из 5 столов заняты - слот все еще доступен
	times, err := availableTimes(schedule, reservationsAt("20:00", "20:00", "20:00", "20:00"), 5)
	require.NoError(t, err)
	assert.Equal(t, schedule.Catalog, times)
}

func TestAvailableTimes_BlockingWindow(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	// Насыщенное время 19:30, окно [18:30, 21:00] включительно:
	// блокируются 19:30, 20:00, 20:30 и 21:00
	times, err := availableTimes(schedule, reservationsAt("19:30"), 1)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"21:30", "22:00",
	}, times)
}

func TestAvailableTimes_WindowBoundsInclusive(t *testing.T) {
	schedule := domain.ServiceSchedule{
		Catalog:            []types.TimeString{"18:30", "19:00", "19:30", "21:00", "21:30"},
		BlockBeforeMinutes: 60,
		BlockAfterMinutes:  90,
	}

	// Окно вокруг 19:30 - [18:30, 21:00], обе границы блокируются
	times, err := availableTimes(schedule, reservationsAt("19:30"), 1)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"21:30"}, times)
}

func TestAvailableTimes_MultipleSaturated(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	// Насыщены 12:00 (окно [11:00, 13:30]) и 22:00 (окно [21:00, 23:30])
	times, err := availableTimes(schedule, reservationsAt("12:00", "22:00"), 1)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "14:30", "19:30", "20:00", "20:30"}, times)
}

func TestAvailableTimes_ZeroWindow(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()
	schedule.BlockBeforeMinutes = 0
	schedule.BlockAfterMinutes = 0

	// Нулевое окно воспроизводит поведение без оборачиваемости:
	// блокируется только само насыщенное время
	times, err := availableTimes(schedule, reservationsAt("20:00"), 1)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"19:30", "20:30", "21:00", "21:30", "22:00",
	}, times)
}

func TestAvailableTimes_PreservesCatalogOrder(t *testing.T) {
	schedule := domain.DefaultServiceSchedule()

	times, err := availableTimes(schedule, reservationsAt("13:00"), 1)
	require.NoError(t, err)
	for i := 1; i < len(times); i++ {
		assert.True(t, times[i-1].IsBefore(times[i]))
	}
}
