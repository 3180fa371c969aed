package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatusNextIsStrictlyLinear(t *testing.T) {
	next, ok := TicketStatusOpen.Next()
	require.True(t, ok)
	assert.Equal(t, TicketStatusInProgress, next)

	next, ok = TicketStatusInProgress.Next()
	require.True(t, ok)
	assert.Equal(t, TicketStatusResolved, next)

	next, ok = TicketStatusResolved.Next()
	require.True(t, ok)
	assert.Equal(t, TicketStatusClosed, next)

	_, ok = TicketStatusClosed.Next()
	assert.False(t, ok)
}

func TestParseTicketStatus(t *testing.T) {
	status, err := ParseTicketStatus("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, TicketStatusInProgress, status)

	_, err = ParseTicketStatus("in_progress")
	assert.Error(t, err)

	_, err = ParseTicketStatus("ARCHIVED")
	assert.Error(t, err)
}

func TestTicketPriorityValid(t *testing.T) {
	assert.True(t, TicketPriorityLow.Valid())
	assert.True(t, TicketPriorityMedium.Valid())
	assert.True(t, TicketPriorityHigh.Valid())
	assert.False(t, TicketPriority("URGENT").Valid())
	assert.False(t, TicketPriority("").Valid())
}
