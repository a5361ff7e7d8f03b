package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidCatID  = errors.New("cat id must be positive")
	ErrSlotReserved  = errors.New("slot is reserved and cannot be rescheduled")
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Slot is a bookable time window for one cat.
type Slot struct {
	id        int64
	catID     int64
	window    TimeWindow
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewSlot creates an AVAILABLE slot. The id is assigned on insert.
func NewSlot(catID int64, window TimeWindow) (*Slot, error) {
	if catID <= 0 {
		return nil, ErrInvalidCatID
	}
	return &Slot{
		catID:  catID,
		window: window,
		status: StatusAvailable,
	}, nil
}

func ReconstructSlot(id, catID int64, window TimeWindow, status Status, createdAt, updatedAt time.Time) (*Slot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Slot{
		id:        id,
		catID:     catID,
		window:    window,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Reschedule moves the slot to another cat and/or window. Nil arguments keep
// the current value. Reserved slots are frozen.
func (s *Slot) Reschedule(catID *int64, start, end *time.Time) error {
	if s.status == StatusReserved {
		return ErrSlotReserved
	}
	window, err := s.window.With(start, end)
	if err != nil {
		return err
	}
	if catID != nil {
		if *catID <= 0 {
			return ErrInvalidCatID
		}
		s.catID = *catID
	}
	s.window = window
	return nil
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) ID() int64            { return s.id }
func (s *Slot) CatID() int64         { return s.catID }
func (s *Slot) Window() TimeWindow   { return s.window }
func (s *Slot) StartTime() time.Time { return s.window.Start() }
func (s *Slot) EndTime() time.Time   { return s.window.End() }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
