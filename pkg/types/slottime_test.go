package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotTimeFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SlotTime
		wantErr bool
	}{
		{"canonical form", "10:00 AM", "10:00 AM", false},
		{"lowercase meridiem", "10:00 am", "10:00 AM", false},
		{"surrounding spaces", " 10:00 AM ", "10:00 AM", false},
		{"noon", "12:00 PM", "12:00 PM", false},
		{"evening", "6:00 PM", "6:00 PM", false},
		{"24h format rejected", "18:00", "", true},
		{"no meridiem", "10:00", "", true},
		{"garbage", "half past ten", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSlotTimeFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSlotTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSlotTime(t *testing.T) {
	clock := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, SlotTime("2:00 PM"), NewSlotTime(clock))

	morning := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, SlotTime("9:00 AM"), NewSlotTime(morning))
}

func TestSlotTime_Validate(t *testing.T) {
	assert.NoError(t, SlotTime("10:00 AM").Validate())
	assert.NoError(t, SlotTime("12:00 PM").Validate())

	// Неканоничная запись отклоняется, сопоставление слотов строковое
	assert.Error(t, SlotTime("10:00 am").Validate())
	assert.Error(t, SlotTime("10:00AM").Validate())
	assert.Error(t, SlotTime("18:00").Validate())
	assert.Error(t, SlotTime("").Validate())
}

func TestSlotTime_Minutes(t *testing.T) {
	m, err := SlotTime("9:00 AM").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60, m)

	m, err = SlotTime("12:00 PM").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 12*60, m)

	m, err = SlotTime("6:00 PM").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 18*60, m)

	_, err = SlotTime("bogus").Minutes()
	assert.ErrorIs(t, err, ErrInvalidSlotTime)
}

func TestSlotTime_Before(t *testing.T) {
	assert.True(t, SlotTime("9:00 AM").Before("12:00 PM"))
	assert.True(t, SlotTime("12:00 PM").Before("6:00 PM"))
	assert.False(t, SlotTime("6:00 PM").Before("9:00 AM"))
	assert.False(t, SlotTime("10:00 AM").Before("10:00 AM"))

	// Некорректные значения сортируются последними
	assert.True(t, SlotTime("10:00 AM").Before("bogus"))
	assert.False(t, SlotTime("bogus").Before("10:00 AM"))
}

func TestSlotTime_SQLRoundTrip(t *testing.T) {
	v, err := SlotTime("10:00 AM").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", v)

	// Пустой слот пишется как NULL
	v, err = SlotTime("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var scanned SlotTime
	require.NoError(t, scanned.Scan("2:00 PM"))
	assert.Equal(t, SlotTime("2:00 PM"), scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	require.NoError(t, scanned.Scan([]byte("4:00 PM")))
	assert.Equal(t, SlotTime("4:00 PM"), scanned)

	assert.Error(t, scanned.Scan(42))
}
