// Package timefmt holds the wire formats the shelter clients exchange:
// minute precision datetimes ("2006-01-02 15:04") and plain dates.
package timefmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
)

var location atomic.Pointer[time.Location]

func init() {
	location.Store(time.UTC)
}

// SetLocation sets the zone wire values are parsed and rendered in.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	location.Store(loc)
}

func Location() *time.Location {
	return location.Load()
}

type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, Location())
	if err != nil {
		return DateTime{}, fmt.Errorf("datetime must look like %q: %w", DateTimeLayout, err)
	}
	return DateTime{Time: t}, nil
}

func (d DateTime) String() string {
	return d.In(Location()).Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return Date{}, fmt.Errorf("date must look like %q: %w", DateLayout, err)
	}
	return Date{Time: t}, nil
}

// Dates carry no zone; rendering them must not shift the calendar day.
func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
