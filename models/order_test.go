package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPlaced, OrderStatusDispatched, true},
		{OrderStatusPlaced, OrderStatusCancelled, true},
		{OrderStatusPlaced, OrderStatusCompleted, false},
		{OrderStatusPlaced, OrderStatusPlaced, false},
		{OrderStatusDispatched, OrderStatusCompleted, true},
		{OrderStatusDispatched, OrderStatusCancelled, false},
		{OrderStatusDispatched, OrderStatusDispatched, false},
		{OrderStatusCompleted, OrderStatusDispatched, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusDispatched, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
