package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlotID      = errors.New("slot id must be positive")
	ErrInvalidVolunteerID = errors.New("volunteer id must be positive")
)

// Reservation is a volunteer's claim on one slot.
type Reservation struct {
	id          int64
	slotID      int64
	volunteerID int64
	requestDate time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// Change describes the outcome of a status transition.
type Change struct {
	From Status
	To   Status
	// ReleasesSlot is set when the reservation stops holding its slot.
	ReleasesSlot bool
}

func (c Change) IsNoop() bool {
	return c.From == c.To
}

// NewReservation creates a PENDING reservation. The id is assigned on insert.
func NewReservation(slotID, volunteerID int64, requestDate time.Time) (*Reservation, error) {
	if slotID <= 0 {
		return nil, ErrInvalidSlotID
	}
	if volunteerID <= 0 {
		return nil, ErrInvalidVolunteerID
	}
	return &Reservation{
		slotID:      slotID,
		volunteerID: volunteerID,
		requestDate: truncateToDate(requestDate),
		status:      StatusPending,
	}, nil
}

func ReconstructReservation(
	id, slotID, volunteerID int64,
	requestDate time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		slotID:      slotID,
		volunteerID: volunteerID,
		requestDate: requestDate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// TransitionTo moves the reservation to next. Re-applying the current status
// is accepted and changes nothing.
func (r *Reservation) TransitionTo(next Status) (Change, error) {
	if !next.IsValid() {
		return Change{}, ErrInvalidStatus
	}
	change := Change{From: r.status, To: next}
	if next == r.status {
		return change, nil
	}
	if !r.status.CanTransitionTo(next) {
		return Change{}, ErrInvalidTransition
	}
	change.ReleasesSlot = r.status.IsActive() && !next.IsActive()
	r.status = next
	return change, nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.volunteerID == userID
}

func (r *Reservation) ID() int64              { return r.id }
func (r *Reservation) SlotID() int64          { return r.slotID }
func (r *Reservation) VolunteerID() int64     { return r.volunteerID }
func (r *Reservation) RequestDate() time.Time { return r.requestDate }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
