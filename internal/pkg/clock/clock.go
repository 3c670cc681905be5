// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/character-builder/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a pinned time for tests
type Fixed struct {
	T time.Time
}

// NewFixed returns a clock pinned to t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.T
}
