package readstore

import (
	"context"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
	"shelter-scheduler/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationRequests, error)
	GetReservationRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationRequests, error)
	ListReservationRequestsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationRequestsFirstPageParams) ([]sqlc.ReservationRequests, error)
	ListReservationRequestsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationRequestsKeysetParams) ([]sqlc.ReservationRequests, error)
	ListReservationOverview(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationOverviewParams) ([]sqlc.ListReservationOverviewRow, error)
	ListReservationOverviewByStatusSet(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationOverviewByStatusSetParams) ([]sqlc.ListReservationOverviewByStatusSetRow, error)
	ExistsReservationForSlotAndVolunteer(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsReservationForSlotAndVolunteerParams) (bool, error)
	CountReservationsForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsForSlotParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByIDForUpdate(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationRequestByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListFirstPage(ctx context.Context, volunteerID *int64, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationRequestsFirstPageParams{
		VolunteerID: pgconv.Int8PtrToPgtype(volunteerID),
		Limit:       limit,
	}

	rows, err := r.queries.ListReservationRequestsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListKeyset(ctx context.Context, volunteerID *int64, afterID int64, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationRequestsKeysetParams{
		VolunteerID: pgconv.Int8PtrToPgtype(volunteerID),
		AfterID:     afterID,
		Limit:       limit,
	}

	rows, err := r.queries.ListReservationRequestsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) Overview(ctx context.Context, volunteerID *int64, statuses []reservation.Status) ([]*queries.OverviewRow, error) {
	params := sqlc.ListReservationOverviewParams{
		VolunteerID: pgconv.Int8PtrToPgtype(volunteerID),
		Statuses:    reservation.StatusValues(statuses),
	}

	rows, err := r.queries.ListReservationOverview(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation overview", err)
	}

	result := make([]*queries.OverviewRow, len(rows))
	for i, row := range rows {
		result[i] = assembleOverviewRow(row)
	}
	return result, nil
}

// OverviewByStatusSet lists reservations whose status is in statuses, or not
// in them when negate is set.
func (r *ReservationReadStore) OverviewByStatusSet(ctx context.Context, statuses []reservation.Status, negate bool) ([]*queries.OverviewRow, error) {
	params := sqlc.ListReservationOverviewByStatusSetParams{
		Statuses: reservation.StatusValues(statuses),
		Negate:   negate,
	}

	rows, err := r.queries.ListReservationOverviewByStatusSet(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status set", err)
	}

	result := make([]*queries.OverviewRow, len(rows))
	for i, row := range rows {
		result[i] = assembleOverviewRow(sqlc.ListReservationOverviewRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) ExistsForSlotAndVolunteer(ctx context.Context, slotID, volunteerID int64, statuses []reservation.Status) (bool, error) {
	params := sqlc.ExistsReservationForSlotAndVolunteerParams{
		SlotID:      slotID,
		VolunteerID: volunteerID,
		Statuses:    reservation.StatusValues(statuses),
	}

	exists, err := r.queries.ExistsReservationForSlotAndVolunteer(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing reservation", err)
	}
	return exists, nil
}

func (r *ReservationReadStore) CountForSlot(ctx context.Context, slotID int64, statuses []reservation.Status) (int64, error) {
	params := sqlc.CountReservationsForSlotParams{
		SlotID:   slotID,
		Statuses: reservation.StatusValues(statuses),
	}

	count, err := r.queries.CountReservationsForSlot(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations for slot", err)
	}
	return count, nil
}

func toReservationView(row sqlc.ReservationRequests) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		SlotID:      row.SlotID,
		VolunteerID: row.VolunteerID,
		RequestDate: pgconv.DateFromPgtype(row.RequestDate),
		Status:      reservation.Status(row.Status),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toReservationViews(rows []sqlc.ReservationRequests) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result
}

// Both overview queries return the same columns, so their rows convert into
// each other.
func assembleOverviewRow(row sqlc.ListReservationOverviewRow) *queries.OverviewRow {
	volunteer := queries.AuthorizedUserView{
		Username:  row.VolunteerUsername,
		FirstName: row.VolunteerFirstName,
		LastName:  row.VolunteerLastName,
	}
	return &queries.OverviewRow{
		ReservationID:     row.ReservationID,
		VolunteerUsername: row.VolunteerUsername,
		VolunteerFullName: volunteer.FullName(),
		CatID:             row.CatID,
		CatName:           row.CatName,
		SlotID:            row.SlotID,
		StartTime:         pgconv.TimeFromPgtype(row.StartTime),
		EndTime:           pgconv.TimeFromPgtype(row.EndTime),
		ReservationStatus: reservation.Status(row.ReservationStatus),
	}
}
