package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

func TestDefaultServiceSchedule(t *testing.T) {
	s := DefaultServiceSchedule()

	assert.Len(t, s.Catalog, 12)
	assert.Equal(t, types.TimeString("12:00"), s.Catalog[0])
	assert.Equal(t, types.TimeString("22:00"), s.Catalog[len(s.Catalog)-1])
	assert.Equal(t, 60, s.BlockBeforeMinutes)
	assert.Equal(t, 90, s.BlockAfterMinutes)

	// Каталог упорядочен по возрастанию
	for i := 1; i < len(s.Catalog); i++ {
		assert.True(t, s.Catalog[i-1].IsBefore(s.Catalog[i]))
	}
}

func TestServiceSchedule_Contains(t *testing.T) {
	s := DefaultServiceSchedule()

	assert.True(t, s.Contains("12:00"))
	assert.True(t, s.Contains("20:30"))
	// Между обеденным и вечерним блоком брони не принимаются
	assert.False(t, s.Contains("15:00"))
	assert.False(t, s.Contains("18:00"))
	assert.False(t, s.Contains(""))
}
