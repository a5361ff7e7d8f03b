package commands

import (
	"context"
	"strings"
	"time"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	"shelter-scheduler/internal/pkg/config"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/pkg/timefmt"
	"shelter-scheduler/internal/usecase/shared"

	"github.com/teambition/rrule-go"
)

type CreateSlotInput struct {
	CatID     int64
	StartTime time.Time
	EndTime   time.Time
}

// CreateRecurringSlotsInput expands RRule from StartTime; every occurrence
// becomes one slot of DurationMinutes.
type CreateRecurringSlotsInput struct {
	CatID           int64
	RRule           string
	StartTime       time.Time
	DurationMinutes int
}

// Nil fields keep their current value.
type UpdateSlotInput struct {
	CatID     *int64
	StartTime *time.Time
	EndTime   *time.Time
}

type SlotCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateSlotInput) (int64, error)
	CreateRecurring(ctx context.Context, actor shared.Actor, in CreateRecurringSlotsInput) ([]int64, error)
	Update(ctx context.Context, actor shared.Actor, id int64, in UpdateSlotInput) error
	Delete(ctx context.Context, actor shared.Actor, id int64) error
}

type slotCommandsImpl struct {
	uow          shared.UnitOfWork
	metrics      shared.Metrics
	maxRecurring int
}

func NewSlotCommands(uow shared.UnitOfWork, metrics shared.Metrics, cfg config.Config) SlotCommands {
	return &slotCommandsImpl{
		uow:          uow,
		metrics:      metrics,
		maxRecurring: cfg.Schedule.MaxRecurringSlots,
	}
}

func (uc *slotCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateSlotInput) (int64, error) {
	if err := access.Authorize(actor.Role, access.OpCreateSlot); err != nil {
		return 0, err
	}

	window, err := slot.NewTimeWindow(in.StartTime, in.EndTime)
	if err != nil {
		return 0, err
	}
	newSlot, err := slot.NewSlot(in.CatID, window)
	if err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CatByID(ctx, in.CatID); derr != nil {
			return notFoundAs(derr, errs.ErrCatNotFound)
		}

		id, derr := tx.Slots().Create(ctx, tx.DB(), newSlot)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.SlotsCreated(1)
	return createdID, nil
}

func (uc *slotCommandsImpl) CreateRecurring(ctx context.Context, actor shared.Actor, in CreateRecurringSlotsInput) ([]int64, error) {
	if err := access.Authorize(actor.Role, access.OpCreateSlot); err != nil {
		return nil, err
	}

	if in.DurationMinutes <= 0 {
		return nil, errs.Wrap(errs.ErrInvalidRecurrence, "duration must be positive")
	}
	starts, err := expandRecurrence(in.RRule, in.StartTime, uc.maxRecurring)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(in.DurationMinutes) * time.Minute
	slots := make([]*slot.Slot, len(starts))
	for i, start := range starts {
		window, werr := slot.NewTimeWindow(start, start.Add(duration))
		if werr != nil {
			return nil, werr
		}
		if slots[i], werr = slot.NewSlot(in.CatID, window); werr != nil {
			return nil, werr
		}
	}

	var ids []int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CatByID(ctx, in.CatID); derr != nil {
			return notFoundAs(derr, errs.ErrCatNotFound)
		}

		ids = make([]int64, 0, len(slots))
		for _, s := range slots {
			id, derr := tx.Slots().Create(ctx, tx.DB(), s)
			if derr != nil {
				return derr
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SlotsCreated(len(ids))
	return ids, nil
}

// expandRecurrence returns the occurrence start times of rule. The rule must
// be bounded by COUNT or UNTIL and yield between 1 and limit occurrences.
func expandRecurrence(rule string, dtstart time.Time, limit int) ([]time.Time, error) {
	rule = strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
	opt, err := rrule.StrToROptionInLocation(rule, timefmt.Location())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRecurrence)
	}
	if opt.Count <= 0 && opt.Until.IsZero() {
		return nil, errs.Wrap(errs.ErrInvalidRecurrence, "rule needs COUNT or UNTIL")
	}
	opt.Dtstart = dtstart

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRecurrence)
	}

	var starts []time.Time
	next := r.Iterator()
	for t, ok := next(); ok; t, ok = next() {
		if len(starts) == limit {
			return nil, errs.Wrapf(errs.ErrInvalidRecurrence, "rule yields more than %d occurrences", limit)
		}
		starts = append(starts, t)
	}
	if len(starts) == 0 {
		return nil, errs.Wrap(errs.ErrInvalidRecurrence, "rule yields no occurrences")
	}
	return starts, nil
}

func (uc *slotCommandsImpl) Update(ctx context.Context, actor shared.Actor, id int64, in UpdateSlotInput) error {
	if err := access.Authorize(actor.Role, access.OpUpdateSlot); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().SlotForUpdate(ctx, id)
		if derr != nil {
			return notFoundAs(derr, errs.ErrSlotNotFound)
		}

		if in.CatID != nil && *in.CatID != snap.CatID {
			if _, derr = tx.Reads().CatByID(ctx, *in.CatID); derr != nil {
				return notFoundAs(derr, errs.ErrCatNotFound)
			}
		}

		current, derr := reconstructSlot(snap)
		if derr != nil {
			return derr
		}
		if derr = current.Reschedule(in.CatID, in.StartTime, in.EndTime); derr != nil {
			return derr
		}

		derr = tx.Slots().UpdateSchedule(ctx, tx.DB(), current)
		if infra.IsKind(derr, infra.KindConflict) {
			return slot.ErrSlotReserved
		}
		return derr
	})
}

// Delete refuses to drop a slot that an active reservation still holds.
// Inactive reservations go with the slot.
func (uc *slotCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id int64) error {
	if err := access.Authorize(actor.Role, access.OpDeleteSlot); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SlotForUpdate(ctx, id); derr != nil {
			return notFoundAs(derr, errs.ErrSlotNotFound)
		}

		active, derr := tx.Reads().CountReservations(ctx, id, reservation.ActiveStatuses())
		if derr != nil {
			return derr
		}
		if active > 0 {
			return errs.ErrSlotHasActiveReservations
		}

		return notFoundAs(tx.Slots().Delete(ctx, tx.DB(), id), errs.ErrSlotNotFound)
	})
}

func reconstructSlot(snap *shared.SlotSnapshot) (*slot.Slot, error) {
	window, err := slot.NewTimeWindow(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, err
	}
	return slot.ReconstructSlot(snap.ID, snap.CatID, window, snap.Status, snap.CreatedAt, snap.UpdatedAt)
}
