//go:build unit

package repository

import (
	"context"
	"testing"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservationRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationRequestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationRequestStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservationRequest(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	res, err := reservation.NewReservation(1, 9, ten)
	require.NoError(t, err)

	params := sqlc.CreateReservationRequestParams{
		SlotID:      1,
		VolunteerID: 9,
		RequestDate: pgconv.DateToPgtype(ten),
		Status:      0,
	}

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("CreateReservationRequest", ctx, mock.Anything, params).Return(int64(5), nil)

		id, err := NewReservationRepository(q, nil).Create(ctx, nil, res)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("active reservation already on slot", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_reservation_requests_active_slot"}
		q.On("CreateReservationRequest", ctx, mock.Anything, params).Return(int64(0), pgErr)

		_, err := NewReservationRepository(q, nil).Create(ctx, nil, res)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "uq_reservation_requests_active_slot", infra.ConstraintName(err))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	q := new(MockReservationWriteQueries)
	q.On("UpdateReservationRequestStatus", ctx, mock.Anything, sqlc.UpdateReservationRequestStatusParams{ID: 1, Status: 2}).Return(int64(1), nil)
	q.On("UpdateReservationRequestStatus", ctx, mock.Anything, sqlc.UpdateReservationRequestStatusParams{ID: 2, Status: 2}).Return(int64(0), nil)

	repo := NewReservationRepository(q, nil)
	assert.NoError(t, repo.UpdateStatus(ctx, nil, 1, reservation.StatusRejected))
	assert.True(t, infra.IsKind(repo.UpdateStatus(ctx, nil, 2, reservation.StatusRejected), infra.KindNotFound))
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	q := new(MockReservationWriteQueries)
	q.On("DeleteReservationRequest", ctx, mock.Anything, int64(1)).Return(int64(1), nil)
	q.On("DeleteReservationRequest", ctx, mock.Anything, int64(2)).Return(int64(0), nil)

	repo := NewReservationRepository(q, nil)
	assert.NoError(t, repo.Delete(ctx, nil, 1))
	assert.True(t, infra.IsKind(repo.Delete(ctx, nil, 2), infra.KindNotFound))
}
