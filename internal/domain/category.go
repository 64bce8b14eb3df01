package domain

// TableCategory is a table-size bucket with its own independent capacity pool.
// The persisted values match the legacy schema ("2", "3-4", "5-6", "7-8").
type TableCategory string

const (
	CategoryPair        TableCategory = "2"
	CategorySmallGroup  TableCategory = "3-4"
	CategoryMediumGroup TableCategory = "5-6"
	CategoryLargeGroup  TableCategory = "7-8"
)

// IsValid returns true for one of the known categories
func (c TableCategory) IsValid() bool {
	switch c {
	case CategoryPair, CategorySmallGroup, CategoryMediumGroup, CategoryLargeGroup:
		return true
	}
	return false
}

// CategoryBucket describes one table-size bucket: the inclusive guest-count
// upper bound that maps into it and how many physical tables it has.
type CategoryBucket struct {
	Category  TableCategory
	MaxGuests int
	Tables    int
}

// TablePlan is the restaurant's static table configuration: an ordered list
// of buckets by ascending MaxGuests. It is fixed at deployment and injected
// into the engine so tests can vary capacities without touching logic.
type TablePlan struct {
	Buckets []CategoryBucket
}

// DefaultTablePlan returns the plan used when configuration omits [tables]:
// 5 tables for two, 3 for 3-4 guests, 2 for 5-6, 1 for 7-8.
func DefaultTablePlan() TablePlan {
	return TablePlan{Buckets: []CategoryBucket{
		{Category: CategoryPair, MaxGuests: 2, Tables: 5},
		{Category: CategorySmallGroup, MaxGuests: 4, Tables: 3},
		{Category: CategoryMediumGroup, MaxGuests: 6, Tables: 2},
		{Category: CategoryLargeGroup, MaxGuests: 8, Tables: 1},
	}}
}

// Classify maps a guest count to the smallest category whose bound covers it.
// Counts above the largest bound are clamped to the largest category,
// preserving the legacy behavior.
func (p TablePlan) Classify(numGuests int) TableCategory {
	for _, b := range p.Buckets {
		if numGuests <= b.MaxGuests {
			return b.Category
		}
	}
	return p.Buckets[len(p.Buckets)-1].Category
}

// Capacity returns the number of tables for a category, 0 for unknown ones
func (p TablePlan) Capacity(category TableCategory) int {
	for _, b := range p.Buckets {
		if b.Category == category {
			return b.Tables
		}
	}
	return 0
}
