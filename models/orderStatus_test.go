package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHappyPath(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusShipped))
	assert.True(t, CanTransition(StatusShipped, StatusDelivered))
}

func TestCancelFromNonTerminalOnly(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusReady, StatusCancelled))
	assert.True(t, CanTransition(StatusShipped, StatusCancelled))

	assert.False(t, CanTransition(StatusDelivered, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled))
}

func TestNoSkippingOrRewinding(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusShipped))
	assert.False(t, CanTransition(StatusPending, StatusDelivered))
	assert.False(t, CanTransition(StatusReady, StatusPending))
	assert.False(t, CanTransition(StatusDelivered, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusReady))
}

func TestUnknownStatusNeverTransitions(t *testing.T) {
	assert.False(t, CanTransition("Pending", "Done"))
	assert.False(t, CanTransition("Whatever", StatusReady))
	assert.False(t, ValidStatus("Done"))
	assert.True(t, ValidStatus(StatusDelivered))
}
