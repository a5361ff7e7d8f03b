package slot

import (
	"errors"
	"time"
)

var ErrInvalidTimeWindow = errors.New("start time must be before end time")

// TimeWindow is a half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// With replaces whichever bounds are given and validates the result.
func (w TimeWindow) With(start, end *time.Time) (TimeWindow, error) {
	s, e := w.start, w.end
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return NewTimeWindow(s, e)
}
