package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActor_CanTransitionBooking(t *testing.T) {
	booking := &Booking{
		ID:             "b1",
		ClientID:       "client-1",
		PhotographerID: "photographer-1",
		Status:         StatusPending,
	}

	tests := []struct {
		name    string
		actor   Actor
		target  BookingStatus
		allowed bool
	}{
		{"photographer confirms own booking", Actor{"photographer-1", RolePhotographer}, StatusConfirmed, true},
		{"photographer declines own booking", Actor{"photographer-1", RolePhotographer}, StatusDeclined, true},
		{"other photographer cannot confirm", Actor{"photographer-2", RolePhotographer}, StatusConfirmed, false},
		{"client cannot confirm", Actor{"client-1", RoleClient}, StatusConfirmed, false},
		{"client cannot decline", Actor{"client-1", RoleClient}, StatusDeclined, false},
		{"client cancels own booking", Actor{"client-1", RoleClient}, StatusCancelled, true},
		{"other client cannot cancel", Actor{"client-2", RoleClient}, StatusCancelled, false},
		{"photographer cancels own booking", Actor{"photographer-1", RolePhotographer}, StatusCancelled, true},
		{"other photographer cannot cancel", Actor{"photographer-2", RolePhotographer}, StatusCancelled, false},
		{"admin confirms anything", Actor{"admin-1", RoleAdmin}, StatusConfirmed, true},
		{"admin cancels anything", Actor{"admin-1", RoleAdmin}, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.actor.CanTransitionBooking(booking, tt.target))
		})
	}
}

func TestActor_CanViewBooking(t *testing.T) {
	booking := &Booking{ClientID: "client-1", PhotographerID: "photographer-1"}

	assert.True(t, Actor{"client-1", RoleClient}.CanViewBooking(booking))
	assert.True(t, Actor{"photographer-1", RolePhotographer}.CanViewBooking(booking))
	assert.True(t, Actor{"admin-1", RoleAdmin}.CanViewBooking(booking))
	assert.False(t, Actor{"client-2", RoleClient}.CanViewBooking(booking))
	assert.False(t, Actor{"photographer-2", RolePhotographer}.CanViewBooking(booking))
}

func TestActor_CanDeleteBooking(t *testing.T) {
	booking := &Booking{ClientID: "client-1", PhotographerID: "photographer-1"}

	assert.True(t, Actor{"client-1", RoleClient}.CanDeleteBooking(booking))
	assert.True(t, Actor{"admin-1", RoleAdmin}.CanDeleteBooking(booking))

	// Фотограф запись не удаляет, даже свою
	assert.False(t, Actor{"photographer-1", RolePhotographer}.CanDeleteBooking(booking))
	assert.False(t, Actor{"client-2", RoleClient}.CanDeleteBooking(booking))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleClient))
	assert.True(t, IsValidRole(RolePhotographer))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole(Role("manager")))
	assert.False(t, IsValidRole(Role("")))
}
