//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationViewQueries struct {
	mock.Mock
}

func (m *MockReservationViewQueries) GetReservationRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ReservationRequests), args.Error(1)
}

func (m *MockReservationViewQueries) GetReservationRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ReservationRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ReservationRequests), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationRequestsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationRequestsFirstPageParams) ([]sqlc.ReservationRequests, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ReservationRequests), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationRequestsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationRequestsKeysetParams) ([]sqlc.ReservationRequests, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ReservationRequests), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationOverview(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationOverviewParams) ([]sqlc.ListReservationOverviewRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationOverviewRow), args.Error(1)
}

func (m *MockReservationViewQueries) ListReservationOverviewByStatusSet(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationOverviewByStatusSetParams) ([]sqlc.ListReservationOverviewByStatusSetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationOverviewByStatusSetRow), args.Error(1)
}

func (m *MockReservationViewQueries) ExistsReservationForSlotAndVolunteer(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsReservationForSlotAndVolunteerParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationViewQueries) CountReservationsForSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsForSlotParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

var (
	slotStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(time.Hour)
)

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps row to view", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("GetReservationRequestByID", ctx, mock.Anything, int64(3)).Return(sqlc.ReservationRequests{
			ID:          3,
			SlotID:      1,
			VolunteerID: 9,
			RequestDate: pgtype.Date{Time: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), Valid: true},
			Status:      int16(reservation.StatusApproved),
			CreatedAt:   ts(slotStart),
			UpdatedAt:   ts(slotStart),
		}, nil)

		view, err := NewReservationReadStore(q, nil).FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.SlotID)
		assert.Equal(t, int64(9), view.VolunteerID)
		assert.Equal(t, reservation.StatusApproved, view.Status)
		assert.Equal(t, "2025-05-30", view.RequestDate.Format(time.DateOnly))
		q.AssertExpectations(t)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("GetReservationRequestByID", ctx, mock.Anything, int64(3)).Return(sqlc.ReservationRequests{}, pgx.ErrNoRows)

		view, err := NewReservationReadStore(q, nil).FindByID(ctx, 3)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationReadStore_Overview(t *testing.T) {
	ctx := context.Background()
	volunteerID := int64(9)

	q := new(MockReservationViewQueries)
	q.On("ListReservationOverview", ctx, mock.Anything, sqlc.ListReservationOverviewParams{
		VolunteerID: pgtype.Int8{Int64: volunteerID, Valid: true},
		Statuses:    []int16{0, 1, 2, 3, 4, 5},
	}).Return([]sqlc.ListReservationOverviewRow{
		{
			ReservationID:      3,
			VolunteerUsername:  "vera",
			VolunteerFirstName: "Vera",
			VolunteerLastName:  "Lind",
			CatID:              7,
			CatName:            "Miso",
			SlotID:             1,
			StartTime:          ts(slotStart),
			EndTime:            ts(slotEnd),
			ReservationStatus:  int16(reservation.StatusPending),
		},
	}, nil)

	rows, err := NewReservationReadStore(q, nil).Overview(ctx, &volunteerID, reservation.AllStatuses())
	require.NoError(t, err)

	want := []*queries.OverviewRow{{
		ReservationID:     3,
		VolunteerUsername: "vera",
		VolunteerFullName: "Vera Lind",
		CatID:             7,
		CatName:           "Miso",
		SlotID:            1,
		StartTime:         slotStart,
		EndTime:           slotEnd,
		ReservationStatus: reservation.StatusPending,
	}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("overview mismatch (-want +got):\n%s", diff)
	}
	q.AssertExpectations(t)
}

func TestReservationReadStore_OverviewByStatusSet(t *testing.T) {
	ctx := context.Background()

	for _, negate := range []bool{false, true} {
		q := new(MockReservationViewQueries)
		q.On("ListReservationOverviewByStatusSet", ctx, mock.Anything, sqlc.ListReservationOverviewByStatusSetParams{
			Statuses: []int16{0, 1, 4},
			Negate:   negate,
		}).Return([]sqlc.ListReservationOverviewByStatusSetRow{
			{ReservationID: 1, VolunteerUsername: "solo", VolunteerFirstName: "Solo", ReservationStatus: 2},
		}, nil)

		rows, err := NewReservationReadStore(q, nil).OverviewByStatusSet(ctx, reservation.ActiveStatuses(), negate)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Solo", rows[0].VolunteerFullName)
		assert.Equal(t, reservation.StatusRejected, rows[0].ReservationStatus)
		q.AssertExpectations(t)
	}
}

func TestReservationReadStore_ListFirstPage(t *testing.T) {
	ctx := context.Background()

	t.Run("all volunteers when filter is nil", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("ListReservationRequestsFirstPage", ctx, mock.Anything, sqlc.ListReservationRequestsFirstPageParams{
			VolunteerID: pgtype.Int8{},
			Limit:       21,
		}).Return([]sqlc.ReservationRequests{{ID: 2}, {ID: 1}}, nil)

		rows, err := NewReservationReadStore(q, nil).ListFirstPage(ctx, nil, 21)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockReservationViewQueries)
		q.On("ListReservationRequestsFirstPage", ctx, mock.Anything, mock.Anything).
			Return([]sqlc.ReservationRequests(nil), assert.AnError)

		rows, err := NewReservationReadStore(q, nil).ListFirstPage(ctx, nil, 21)
		assert.Nil(t, rows)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_CountForSlot(t *testing.T) {
	ctx := context.Background()
	q := new(MockReservationViewQueries)
	q.On("CountReservationsForSlot", ctx, mock.Anything, sqlc.CountReservationsForSlotParams{
		SlotID:   5,
		Statuses: []int16{0, 1, 4},
	}).Return(int64(1), nil)

	count, err := NewReservationReadStore(q, nil).CountForSlot(ctx, 5, reservation.ActiveStatuses())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
