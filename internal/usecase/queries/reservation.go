package queries

import (
	"context"

	"shelter-scheduler/internal/domain/access"
	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/infra"
	"shelter-scheduler/internal/pkg/errs"
	"shelter-scheduler/internal/usecase/shared"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id int64) (*ReservationView, error)
	// GetByIDSystem skips ownership checks; used to replay idempotent requests.
	GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
	Overview(ctx context.Context, actor shared.Actor, volunteerID *int64) ([]*OverviewRow, error)
	Ongoing(ctx context.Context, actor shared.Actor) ([]*OverviewRow, error)
	Concluded(ctx context.Context, actor shared.Actor) ([]*OverviewRow, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListFirstPage(ctx context.Context, volunteerID *int64, limit int32) ([]*ReservationView, error)
	ListKeyset(ctx context.Context, volunteerID *int64, afterID int64, limit int32) ([]*ReservationView, error)
	Overview(ctx context.Context, volunteerID *int64, statuses []reservation.Status) ([]*OverviewRow, error)
	OverviewByStatusSet(ctx context.Context, statuses []reservation.Status, negate bool) ([]*OverviewRow, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id int64) (*ReservationView, error) {
	if err := access.Authorize(actor.Role, access.OpReadReservations); err != nil {
		return nil, err
	}

	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Other volunteers' reservations are indistinguishable from missing ones.
	if !access.Allows(actor.Role, access.OpManageReservations) && view.VolunteerID != actor.UserID {
		return nil, errs.ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if err := access.Authorize(actor.Role, access.OpReadReservations); err != nil {
		return nil, nil, err
	}

	var volunteerID *int64
	if !access.Allows(actor.Role, access.OpManageReservations) {
		volunteerID = &actor.UserID
	}

	limit = ValidateLimit(limit)
	// One extra row tells whether another page exists.
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		rows []*ReservationView
		err  error
	)
	if after != nil && after.After != "" {
		afterID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.store.ListKeyset(ctx, volunteerID, afterID, fetch)
	} else {
		rows, err = q.store.ListFirstPage(ctx, volunteerID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	next := &Cursor{After: EncodeAfterCursor(rows[len(rows)-1].ID)}
	return rows, next, nil
}

// Overview without a volunteer is the approval inbox: PENDING requests of
// everyone. With a volunteer it is that volunteer's full history.
func (q *reservationQueriesImpl) Overview(ctx context.Context, actor shared.Actor, volunteerID *int64) ([]*OverviewRow, error) {
	if volunteerID == nil {
		if err := access.Authorize(actor.Role, access.OpOverviewAll); err != nil {
			return nil, err
		}
		return q.store.Overview(ctx, nil, []reservation.Status{reservation.StatusPending})
	}

	if !access.Allows(actor.Role, access.OpOverviewAll) {
		if err := access.Authorize(actor.Role, access.OpReadReservations); err != nil {
			return nil, err
		}
		if *volunteerID != actor.UserID {
			return nil, access.ErrForbidden
		}
	}
	return q.store.Overview(ctx, volunteerID, reservation.AllStatuses())
}

func (q *reservationQueriesImpl) Ongoing(ctx context.Context, actor shared.Actor) ([]*OverviewRow, error) {
	if err := access.Authorize(actor.Role, access.OpListOngoing); err != nil {
		return nil, err
	}
	return q.store.OverviewByStatusSet(ctx, reservation.ActiveStatuses(), false)
}

// Concluded is the complement of Ongoing over every stored status value.
func (q *reservationQueriesImpl) Concluded(ctx context.Context, actor shared.Actor) ([]*OverviewRow, error) {
	if err := access.Authorize(actor.Role, access.OpListConcluded); err != nil {
		return nil, err
	}
	return q.store.OverviewByStatusSet(ctx, reservation.ActiveStatuses(), true)
}
