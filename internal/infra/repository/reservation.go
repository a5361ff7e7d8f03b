package repository

import (
	"context"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationRequestParams) (int64, error)
	UpdateReservationRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationRequestStatusParams) (int64, error)
	DeleteReservationRequest(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a reservation. A second active reservation on the same slot
// violates uq_reservation_requests_active_slot and comes back as KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	params := sqlc.CreateReservationRequestParams{
		SlotID:      res.SlotID(),
		VolunteerID: res.VolunteerID(),
		RequestDate: pgconv.DateToPgtype(res.RequestDate()),
		Status:      int16(res.Status()), // #nosec G115 -- status values are 0..5
	}

	id, err := r.queries.CreateReservationRequest(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error {
	params := sqlc.UpdateReservationRequestStatusParams{
		ID:     id,
		Status: int16(status), // #nosec G115 -- status values are 0..5
	}

	affected, err := r.queries.UpdateReservationRequestStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteReservationRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
