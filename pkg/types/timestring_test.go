package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 20, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("20:30"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	// time.Parse принимает "9:05", но канонический формат - нет
	_, err = NewTimeStringFromString("9:05")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("19:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1170, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("20:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), got)

	got, err = TimeString("12:00").AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("19:30"))
	assert.True(t, TimeString("22:00").IsAfter("21:30"))
	assert.False(t, TimeString("14:30").IsBefore("14:30"))
	assert.False(t, TimeString("14:30").IsAfter("14:30"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("12:00").IsZero())
}
