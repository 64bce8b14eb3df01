package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablePlan_Classify(t *testing.T) {
	plan := DefaultTablePlan()

	tests := []struct {
		numGuests int
		want      TableCategory
	}{
		{1, CategoryPair},
		{2, CategoryPair},
		{3, CategorySmallGroup},
		{4, CategorySmallGroup},
		{5, CategoryMediumGroup},
		{6, CategoryMediumGroup},
		{7, CategoryLargeGroup},
		{8, CategoryLargeGroup},
		// Выше верхней границы - прижимаем к самой большой категории
		{9, CategoryLargeGroup},
		{20, CategoryLargeGroup},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plan.Classify(tt.numGuests), "numGuests=%d", tt.numGuests)
	}
}

func TestTablePlan_Classify_Deterministic(t *testing.T) {
	plan := DefaultTablePlan()
	for guests := 1; guests <= 10; guests++ {
		first := plan.Classify(guests)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, plan.Classify(guests))
		}
	}
}

func TestTablePlan_Classify_Monotonic(t *testing.T) {
	plan := DefaultTablePlan()

	// Больше гостей никогда не дает меньшую категорию
	rank := map[TableCategory]int{
		CategoryPair:        0,
		CategorySmallGroup:  1,
		CategoryMediumGroup: 2,
		CategoryLargeGroup:  3,
	}
	prev := plan.Classify(1)
	for guests := 2; guests <= 12; guests++ {
		cur := plan.Classify(guests)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "guests=%d", guests)
		prev = cur
	}
}

func TestTablePlan_Capacity(t *testing.T) {
	plan := DefaultTablePlan()

	assert.Equal(t, 5, plan.Capacity(CategoryPair))
	assert.Equal(t, 3, plan.Capacity(CategorySmallGroup))
	assert.Equal(t, 2, plan.Capacity(CategoryMediumGroup))
	assert.Equal(t, 1, plan.Capacity(CategoryLargeGroup))
	assert.Equal(t, 0, plan.Capacity(TableCategory("9-10")))
}

func TestTableCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryPair.IsValid())
	assert.True(t, CategoryLargeGroup.IsValid())
	assert.False(t, TableCategory("").IsValid())
	assert.False(t, TableCategory("10").IsValid())
}
