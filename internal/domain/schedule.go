package domain

import "github.com/inigoestebangomez/cool-mex-server/pkg/types"

// ServiceSchedule is the bookable slot catalog plus the blocking window
// applied around saturated slots. The catalog is configuration, not derived
// data: it lists every bookable time in ascending order, at the service's
// fixed 30-minute granularity, covering the midday and evening blocks.
type ServiceSchedule struct {
	Catalog []types.TimeString

	// Once a category is fully booked at time t, every catalog slot whose
	// minute offset falls inside [t-BlockBeforeMinutes, t+BlockAfterMinutes]
	// (inclusive) is blocked too: the same physical tables are still occupied
	// during the turnaround window.
	BlockBeforeMinutes int
	BlockAfterMinutes  int
}

// DefaultServiceSchedule returns the schedule used when configuration omits
// [schedule]: the legacy midday and evening catalog with a 60-before /
// 90-after turnaround window.
func DefaultServiceSchedule() ServiceSchedule {
	return ServiceSchedule{
		Catalog: []types.TimeString{
			"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
			"19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
		},
		BlockBeforeMinutes: 60,
		BlockAfterMinutes:  90,
	}
}

// Contains returns true if t is one of the catalog slots
func (s ServiceSchedule) Contains(t types.TimeString) bool {
	for _, slot := range s.Catalog {
		if slot == t {
			return true
		}
	}
	return false
}
