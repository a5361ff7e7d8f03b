package shared

import (
	"context"
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands need before they write. Inside a Tx
// they run on the transaction, so ForUpdate variants hold row locks until commit.
type CommandReads interface {
	CatByID(ctx context.Context, id int64) (*CatSnapshot, error)
	VolunteerByID(ctx context.Context, id int64) (*UserSnapshot, error)
	SlotByID(ctx context.Context, id int64) (*SlotSnapshot, error)
	SlotForUpdate(ctx context.Context, id int64) (*SlotSnapshot, error)
	ReservationForUpdate(ctx context.Context, id int64) (*ReservationSnapshot, error)
	HasReservation(ctx context.Context, slotID, volunteerID int64, statuses []reservation.Status) (bool, error)
	CountReservations(ctx context.Context, slotID int64, statuses []reservation.Status) (int64, error)
	IdempotencyForUpdate(ctx context.Context, key uuid.UUID, userID int64) (*IdempotencyRecord, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (int64, error)
	UpdateSchedule(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	// MarkReserved flips AVAILABLE to RESERVED and reports whether it did.
	MarkReserved(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error)
	MarkAvailable(ctx context.Context, tx sqlc.DBTX, id int64) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, reservationID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64) error
}
