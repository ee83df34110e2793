package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, StatusOpen.IsValid())
	assert.True(t, StatusClosed.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, AppointmentStatus("pending").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	t.Run("closed cannot be canceled", func(t *testing.T) {
		assert.False(t, StatusClosed.CanTransitionTo(StatusCanceled))
	})

	t.Run("closed can be reopened", func(t *testing.T) {
		assert.True(t, StatusClosed.CanTransitionTo(StatusOpen))
	})

	t.Run("open can go anywhere", func(t *testing.T) {
		assert.True(t, StatusOpen.CanTransitionTo(StatusClosed))
		assert.True(t, StatusOpen.CanTransitionTo(StatusCanceled))
		assert.True(t, StatusOpen.CanTransitionTo(StatusOpen))
	})

	t.Run("canceled can be reopened or closed", func(t *testing.T) {
		assert.True(t, StatusCanceled.CanTransitionTo(StatusOpen))
		assert.True(t, StatusCanceled.CanTransitionTo(StatusClosed))
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		assert.False(t, StatusOpen.CanTransitionTo(AppointmentStatus("done")))
	})
}

func TestAppointmentIsAdminHold(t *testing.T) {
	note := AdminHoldNote
	hold := &Appointment{Status: StatusOpen, Notes: &note}
	assert.True(t, hold.IsAdminHold())

	other := "обычная заметка"
	regular := &Appointment{Status: StatusOpen, Notes: &other}
	assert.False(t, regular.IsAdminHold())
	assert.False(t, (&Appointment{}).IsAdminHold())
}
