package repository

import (
	"context"

	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.Slots, error)
	UpdateSlotSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotScheduleParams) (int64, error)
	MarkSlotReserved(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	MarkSlotAvailable(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	DeleteSlot(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (int64, error) {
	params := sqlc.CreateSlotParams{
		CatID:     s.CatID(),
		StartTime: pgconv.TimeToPgtype(s.StartTime()),
		EndTime:   pgconv.TimeToPgtype(s.EndTime()),
	}

	row, err := r.queries.CreateSlot(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create slot", err)
	}

	return row.ID, nil
}

// UpdateSchedule only touches AVAILABLE slots. A slot that became RESERVED
// since it was read yields KindConflict.
func (r *SlotRepository) UpdateSchedule(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	params := sqlc.UpdateSlotScheduleParams{
		ID:        s.ID(),
		CatID:     s.CatID(),
		StartTime: pgconv.TimeToPgtype(s.StartTime()),
		EndTime:   pgconv.TimeToPgtype(s.EndTime()),
	}

	affected, err := r.queries.UpdateSlotSchedule(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot schedule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot is no longer available", nil, infra.KindConflict)
	}

	return nil
}

// MarkReserved is the guarded AVAILABLE -> RESERVED flip. It reports false
// when another transaction got there first.
func (r *SlotRepository) MarkReserved(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error) {
	affected, err := r.queries.MarkSlotReserved(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve slot", err)
	}

	return affected == 1, nil
}

func (r *SlotRepository) MarkAvailable(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.MarkSlotAvailable(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteSlot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}
