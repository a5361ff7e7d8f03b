package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Slot errors
	ErrSlotNotFound              = errors.New("slot not found")
	ErrSlotNotAvailable          = errors.New("slot is not available")
	ErrSlotHasActiveReservations = errors.New("slot has active reservations")
	ErrInvalidRecurrence         = errors.New("invalid recurrence rule")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrNotReservationOwner  = errors.New("reservation belongs to another volunteer")

	// Referenced entities
	ErrCatNotFound       = errors.New("cat not found")
	ErrVolunteerNotFound = errors.New("volunteer not found")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")
)
