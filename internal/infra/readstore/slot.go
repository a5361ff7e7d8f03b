package readstore

import (
	"context"

	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
	"shelter-scheduler/internal/usecase/queries"
)

type SlotReadQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Slots, error)
	GetSlotByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Slots, error)
	ListSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsParams) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id int64) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return toSlotView(row), nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *SlotReadStore) FindByIDForUpdate(ctx context.Context, id int64) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	return toSlotView(row), nil
}

func (r *SlotReadStore) List(ctx context.Context, filter queries.SlotFilter) ([]*queries.SlotView, error) {
	params := sqlc.ListSlotsParams{
		CatID:         pgconv.Int8PtrToPgtype(filter.CatID),
		AvailableOnly: filter.AvailableOnly,
	}

	rows, err := r.queries.ListSlots(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = toSlotView(row)
	}

	return result, nil
}

func toSlotView(row sqlc.Slots) *queries.SlotView {
	return &queries.SlotView{
		ID:        row.ID,
		CatID:     row.CatID,
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		Status:    slot.Status(row.Status),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
