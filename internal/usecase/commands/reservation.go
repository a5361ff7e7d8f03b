package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	"shelter-scheduler/internal/pkg/clock"
	"shelter-scheduler/internal/pkg/config"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/pkg/ptr"
	"shelter-scheduler/internal/usecase/queries"
	"shelter-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createReservationEndpoint = "POST /api/reservations"

	notificationTopicReservation = "reservation"
	notificationKindCreated      = "reservation.created"
	notificationKindStatus       = "reservation.status_changed"
	notificationKindDeleted      = "reservation.deleted"
)

// CreateReservationInput is what the caller asked for. VolunteerID defaults
// to the caller and RequestDate to today.
type CreateReservationInput struct {
	SlotID      int64      `json:"slot_id"`
	VolunteerID *int64     `json:"volunteer_id,omitempty"`
	RequestDate *time.Time `json:"request_date,omitempty"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	// Create reserves a slot. A zero idempotencyKey disables replay detection.
	Create(ctx context.Context, actor shared.Actor, in CreateReservationInput, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, id int64, status int) error
	Delete(ctx context.Context, actor shared.Actor, id int64) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	metrics            shared.Metrics
	clock              clock.Clock
	idempotencyTTL     time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	metrics shared.Metrics,
	clk clock.Clock,
	cfg config.Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		metrics:            metrics,
		clock:              clk,
		idempotencyTTL:     cfg.Schedule.IdempotencyTTL,
	}
}

type statusChangePayload struct {
	ReservationID int64  `json:"reservation_id"`
	SlotID        int64  `json:"slot_id"`
	VolunteerID   int64  `json:"volunteer_id"`
	From          string `json:"from,omitempty"`
	To            string `json:"to"`
	ChangedBy     int64  `json:"changed_by"`
}

func (uc *reservationCommandsImpl) Create(
	ctx context.Context,
	actor shared.Actor,
	in CreateReservationInput,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	if err := access.Authorize(actor.Role, access.OpCreateReservation); err != nil {
		return nil, err
	}

	volunteerID := ptr.Or(in.VolunteerID, actor.UserID)
	if volunteerID != actor.UserID && !access.Allows(actor.Role, access.OpManageReservations) {
		return nil, access.ErrForbidden
	}

	now := uc.clock.Now()
	newReservation, err := reservation.NewReservation(in.SlotID, volunteerID, ptr.Or(in.RequestDate, clock.Today(uc.clock)))
	if err != nil {
		return nil, err
	}

	requestHash, err := calculateRequestHash(in)
	if err != nil {
		return nil, err
	}

	var (
		createdID  int64
		replayedID *int64
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if idempotencyKey != uuid.Nil {
			id, derr := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, actor.UserID, requestHash, now)
			if derr != nil || id != nil {
				replayedID = id
				return derr
			}
		}

		id, derr := uc.reserve(ctx, tx, newReservation)
		if derr != nil {
			return derr
		}
		createdID = id

		derr = uc.enqueue(ctx, tx, notificationKindCreated, statusChangePayload{
			ReservationID: id,
			SlotID:        newReservation.SlotID(),
			VolunteerID:   newReservation.VolunteerID(),
			To:            newReservation.Status().String(),
			ChangedBy:     actor.UserID,
		})
		if derr != nil {
			return derr
		}

		if idempotencyKey != uuid.Nil {
			return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, actor.UserID, id)
		}
		return nil
	})
	if err != nil {
		uc.recordRejection(err)
		return nil, err
	}

	if replayedID != nil {
		uc.metrics.IdempotentReplay()
		view, qerr := uc.reservationQueries.GetByIDSystem(ctx, *replayedID)
		if qerr != nil {
			return nil, qerr
		}
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	uc.metrics.ReservationCreated()
	view, err := uc.reservationQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{Reservation: view, IsReplayed: false}, nil
}

// reserve checks the slot and volunteer, flips the slot to RESERVED with a
// guarded update and inserts the reservation.
func (uc *reservationCommandsImpl) reserve(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (int64, error) {
	snap, err := tx.Reads().SlotByID(ctx, res.SlotID())
	if err != nil {
		return 0, notFoundAs(err, errs.ErrSlotNotFound)
	}

	volunteer, err := tx.Reads().VolunteerByID(ctx, res.VolunteerID())
	if err != nil {
		return 0, notFoundAs(err, errs.ErrVolunteerNotFound)
	}
	if !volunteer.IsActive {
		return 0, errs.ErrVolunteerNotFound
	}

	duplicate, err := tx.Reads().HasReservation(ctx, res.SlotID(), res.VolunteerID(), reservation.ActiveStatuses())
	if err != nil {
		return 0, err
	}
	if duplicate {
		return 0, errs.ErrDuplicateReservation
	}

	if snap.Status != slot.StatusAvailable {
		return 0, errs.ErrSlotNotAvailable
	}
	reserved, err := tx.Slots().MarkReserved(ctx, tx.DB(), res.SlotID())
	if err != nil {
		return 0, err
	}
	if !reserved {
		return 0, errs.ErrSlotNotAvailable
	}

	id, err := tx.Reservations().Create(ctx, tx.DB(), res)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.ErrSlotNotAvailable
		}
		return 0, err
	}
	return id, nil
}

// claimIdempotencyKey returns the reservation to replay, or nil when this
// request owns the key and should proceed.
func (uc *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	userID int64,
	requestHash string,
	now time.Time,
) (*int64, error) {
	expiresAt := now.Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyForUpdate(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if !existing.ExpiresAt.After(now) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, now, expiresAt)
		if cerr != nil {
			return nil, cerr
		}
		if claimed {
			return nil, nil
		}
	}

	if existing.Endpoint != createReservationEndpoint || existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	// the key row is written in the same transaction as the reservation, so a
	// committed record is always completed
	if existing.Status != shared.IdempotencyStatusCompleted {
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
	// result_reservation_id is nulled when the reservation is deleted
	if existing.ResultReservationID == nil {
		return nil, errs.Wrap(errs.ErrReservationNotFound, "idempotency key refers to a deleted reservation")
	}
	return existing.ResultReservationID, nil
}

func (uc *reservationCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, id int64, status int) error {
	if err := access.Authorize(actor.Role, access.OpUpdateReservationStatus); err != nil {
		return err
	}

	next, err := reservation.ParseStatus(status)
	if err != nil {
		return err
	}
	manager := access.Allows(actor.Role, access.OpManageReservations)

	var change reservation.Change
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationForUpdate(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrReservationNotFound)
		}

		res, derr := reservation.ReconstructReservation(snap.ID, snap.SlotID, snap.VolunteerID, snap.RequestDate, snap.Status, snap.CreatedAt, snap.UpdatedAt)
		if derr != nil {
			return derr
		}

		if !manager {
			if !res.IsOwnedBy(actor.UserID) {
				return errs.ErrNotReservationOwner
			}
			if next != reservation.StatusCancelled {
				return access.ErrForbidden
			}
		}

		change, derr = res.TransitionTo(next)
		if derr != nil {
			return derr
		}
		if change.IsNoop() {
			return nil
		}

		if derr = tx.Reservations().UpdateStatus(ctx, tx.DB(), id, next); derr != nil {
			return notFoundAs(derr, errs.ErrReservationNotFound)
		}
		if change.ReleasesSlot {
			if derr = tx.Slots().MarkAvailable(ctx, tx.DB(), res.SlotID()); derr != nil {
				return derr
			}
		}

		return uc.enqueue(ctx, tx, notificationKindStatus, statusChangePayload{
			ReservationID: id,
			SlotID:        res.SlotID(),
			VolunteerID:   res.VolunteerID(),
			From:          change.From.String(),
			To:            change.To.String(),
			ChangedBy:     actor.UserID,
		})
	})
	if err != nil {
		return err
	}

	if !change.IsNoop() {
		uc.metrics.ReservationStatusChanged(change.From.String(), change.To.String())
		slog.Debug("reservation status changed",
			"reservation_id", id,
			"from", change.From.String(),
			"to", change.To.String(),
			"slot_released", change.ReleasesSlot)
	}
	return nil
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id int64) error {
	if err := access.Authorize(actor.Role, access.OpDeleteReservation); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationForUpdate(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrReservationNotFound)
		}

		if derr = tx.Reservations().Delete(ctx, tx.DB(), id); derr != nil {
			return notFoundAs(derr, errs.ErrReservationNotFound)
		}
		if snap.Status.IsActive() {
			if derr = tx.Slots().MarkAvailable(ctx, tx.DB(), snap.SlotID); derr != nil {
				return derr
			}
		}

		return uc.enqueue(ctx, tx, notificationKindDeleted, statusChangePayload{
			ReservationID: id,
			SlotID:        snap.SlotID,
			VolunteerID:   snap.VolunteerID,
			From:          snap.Status.String(),
			ChangedBy:     actor.UserID,
		})
	})
}

func (uc *reservationCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, kind string, payload statusChangePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, notificationTopicReservation, body, uc.clock.Now())
}

func (uc *reservationCommandsImpl) recordRejection(err error) {
	switch {
	case errs.Is(err, errs.ErrSlotNotAvailable):
		uc.metrics.ReservationRejected("slot_not_available")
	case errs.Is(err, errs.ErrDuplicateReservation):
		uc.metrics.ReservationRejected("duplicate")
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		uc.metrics.ReservationRejected("idempotency_key_reused")
	}
}

func calculateRequestHash(in CreateReservationInput) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode reservation request")
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
