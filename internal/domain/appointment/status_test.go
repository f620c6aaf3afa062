package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medpoint-app/clinic-scheduler/internal/httperr"
)

func TestCanTransition_LegalMoves(t *testing.T) {
	legal := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}

	for _, pair := range legal {
		assert.NoError(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

func TestCanTransition_IllegalMoves(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

	legal := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			if legal[[2]Status{from, to}] {
				continue
			}
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
				"%s -> %s should be rejected", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())

	// No move leaves a terminal state, including self-transitions.
	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
			assert.Error(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.False(t, Status("rescheduled").Valid())
	assert.False(t, Status("").Valid())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
