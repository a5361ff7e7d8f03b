package queries

import (
	"context"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/usecase/shared"
)

type SlotFilter struct {
	CatID         *int64
	AvailableOnly bool
}

type SlotQueries interface {
	List(ctx context.Context, actor shared.Actor, catID *int64) ([]*SlotView, error)
	GetByID(ctx context.Context, actor shared.Actor, id int64) (*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id int64) (*SlotView, error)
	List(ctx context.Context, filter SlotFilter) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

// List returns every slot to roles that manage the schedule and only
// AVAILABLE slots to everyone else allowed to list.
func (q *slotQueriesImpl) List(ctx context.Context, actor shared.Actor, catID *int64) ([]*SlotView, error) {
	if err := access.Authorize(actor.Role, access.OpListSlots); err != nil {
		return nil, err
	}

	filter := SlotFilter{
		CatID:         catID,
		AvailableOnly: !access.Allows(actor.Role, access.OpListAllSlots),
	}
	return q.store.List(ctx, filter)
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id int64) (*SlotView, error) {
	if err := access.Authorize(actor.Role, access.OpListSlots); err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotNotFound
		}
		return nil, err
	}

	if view.Status != slot.StatusAvailable && !access.Allows(actor.Role, access.OpListAllSlots) {
		return nil, errs.ErrSlotNotFound
	}
	return view, nil
}
