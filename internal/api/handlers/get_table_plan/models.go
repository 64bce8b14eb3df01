package get_table_plan

import "github.com/inigoestebangomez/cool-mex-server/internal/domain"

// TablePlanResponse HTTP response model: действующая конфигурация столов,
// каталога слотов и окна блокировки. Только чтение: конфигурация фиксируется
// при деплое
type TablePlanResponse struct {
	Tables   []TableBucket `json:"tables"`
	Schedule Schedule      `json:"schedule"`
}

// TableBucket одна категория столов
type TableBucket struct {
	Category  string `json:"category"`
	MaxGuests int    `json:"maxGuests"`
	Tables    int    `json:"tables"`
}

// Schedule каталог слотов и окно блокировки
type Schedule struct {
	Times              []string `json:"times"`
	BlockBeforeMinutes int      `json:"blockBeforeMinutes"`
	BlockAfterMinutes  int      `json:"blockAfterMinutes"`
}

// FromDomain собирает ответ из доменной конфигурации
func FromDomain(plan domain.TablePlan, schedule domain.ServiceSchedule) *TablePlanResponse {
	buckets := make([]TableBucket, 0, len(plan.Buckets))
	for _, b := range plan.Buckets {
		buckets = append(buckets, TableBucket{
			Category:  string(b.Category),
			MaxGuests: b.MaxGuests,
			Tables:    b.Tables,
		})
	}

	times := make([]string, 0, len(schedule.Catalog))
	for _, t := range schedule.Catalog {
		times = append(times, t.String())
	}

	return &TablePlanResponse{
		Tables: buckets,
		Schedule: Schedule{
			Times:              times,
			BlockBeforeMinutes: schedule.BlockBeforeMinutes,
			BlockAfterMinutes:  schedule.BlockAfterMinutes,
		},
	}
}
