// Package clock is the scheduler's source of the current time.
package clock

import (
	"time"

	"shelter-scheduler/internal/pkg/timefmt"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Today is midnight of the current calendar day in the wire time zone.
// Reservation request dates default to it.
func Today(c Clock) time.Time {
	loc := timefmt.Location()
	y, m, d := c.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Fixed always reports the same instant until moved.
type Fixed struct {
	at time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{at: t}
}

func (c *Fixed) Now() time.Time {
	return c.at
}

func (c *Fixed) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
