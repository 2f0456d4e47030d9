package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PhotographerService/pkg/types"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to declined", StatusPending, StatusDeclined, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, false},
		{"confirmed to declined", StatusConfirmed, StatusDeclined, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"declined is terminal", StatusDeclined, StatusPending, false},
		{"declined cannot be confirmed", StatusDeclined, StatusConfirmed, false},
		{"declined cannot be cancelled", StatusDeclined, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled cannot be confirmed", StatusCancelled, StatusConfirmed, false},
		{"unknown status has no transitions", BookingStatus("draft"), StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled} {
		assert.True(t, IsValidStatus(s), "status %s", s)
	}
	assert.False(t, IsValidStatus(BookingStatus("draft")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusDeclined}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusDeclined}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_OccupiesSlot(t *testing.T) {
	slot := types.SlotTime("10:00 AM")

	// Слот занимает только подтверждённое бронирование с выбранным временем
	assert.True(t, (&Booking{Status: StatusConfirmed, EventTime: slot}).OccupiesSlot())

	assert.False(t, (&Booking{Status: StatusPending, EventTime: slot}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusDeclined, EventTime: slot}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusCancelled, EventTime: slot}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusConfirmed}).OccupiesSlot())
}
