package shared

import (
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID int64
	Role   user.Role
}

type CatSnapshot struct {
	ID   int64
	Name string
}

type UserSnapshot struct {
	ID       int64
	Role     user.Role
	IsActive bool
}

type SlotSnapshot struct {
	ID        int64
	CatID     int64
	StartTime time.Time
	EndTime   time.Time
	Status    slot.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationSnapshot struct {
	ID          int64
	SlotID      int64
	VolunteerID int64
	RequestDate time.Time
	Status      reservation.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              int64
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *int64
	ExpiresAt           time.Time
}
