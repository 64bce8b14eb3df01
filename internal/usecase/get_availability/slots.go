package get_availability

import (
	"fmt"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

// saturatedTimes возвращает времена, в которых категория полностью занята
// Брони сгруппированы по времени; время насыщено, когда броней не меньше,
// чем столов в категории
func saturatedTimes(reservations []*domain.Reservation, capacity int) []types.TimeString {
	if capacity <= 0 {
		return nil
	}

	counts := make(map[types.TimeString]int)
	for _, r := range reservations {
		counts[r.Time]++
	}

	saturated := make([]types.TimeString, 0)
	for t, n := range counts {
		if n >= capacity {
			saturated = append(saturated, t)
		}
	}
	return saturated
}

// availableTimes вычисляет доступные слоты каталога
// Вокруг каждого насыщенного времени t блокируется интервал
// [t-before, t+after] в минутах, границы включительно: столы категории
// физически заняты в окне оборачиваемости, соседние слоты не независимы.
// Результат сохраняет порядок каталога
func availableTimes(
	schedule domain.ServiceSchedule,
	reservations []*domain.Reservation,
	capacity int,
) ([]types.TimeString, error) {
	saturated := saturatedTimes(reservations, capacity)
	if len(saturated) == 0 {
		// Нет насыщенных времен - весь каталог доступен
		return append([]types.TimeString(nil), schedule.Catalog...), nil
	}

	blocked := make(map[types.TimeString]struct{})
	for _, t := range saturated {
		center, err := t.Minutes()
		if err != nil {
			return nil, fmt.Errorf("reserved time %q: %w", t, err)
		}

		lo := center - schedule.BlockBeforeMinutes
		hi := center + schedule.BlockAfterMinutes

		for _, slot := range schedule.Catalog {
			offset, err := slot.Minutes()
			if err != nil {
				return nil, fmt.Errorf("catalog slot %q: %w", slot, err)
			}
			if offset >= lo && offset <= hi {
				blocked[slot] = struct{}{}
			}
		}
	}

	result := make([]types.TimeString, 0, len(schedule.Catalog))
	for _, slot := range schedule.Catalog {
		if _, ok := blocked[slot]; !ok {
			result = append(result, slot)
		}
	}
	return result, nil
}
