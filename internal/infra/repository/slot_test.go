//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotWriteQueries struct {
	mock.Mock
}

func (m *MockSlotWriteQueries) CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockSlotWriteQueries) UpdateSlotSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotScheduleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) MarkSlotReserved(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) MarkSlotAvailable(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) DeleteSlot(ctx context.Context, db sqlc.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

var (
	ten    = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	eleven = ten.Add(time.Hour)
)

func newTestSlot(t *testing.T, id int64, status slot.Status) *slot.Slot {
	t.Helper()
	w, err := slot.NewTimeWindow(ten, eleven)
	require.NoError(t, err)
	s, err := slot.ReconstructSlot(id, 7, w, status, ten, ten)
	require.NoError(t, err)
	return s
}

func TestSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	w, err := slot.NewTimeWindow(ten, eleven)
	require.NoError(t, err)
	s, err := slot.NewSlot(7, w)
	require.NoError(t, err)

	q := new(MockSlotWriteQueries)
	q.On("CreateSlot", ctx, mock.Anything, sqlc.CreateSlotParams{
		CatID:     7,
		StartTime: pgconv.TimeToPgtype(ten),
		EndTime:   pgconv.TimeToPgtype(eleven),
	}).Return(sqlc.Slots{ID: 11}, nil)

	id, err := NewSlotRepository(q, nil).Create(ctx, nil, s)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	q.AssertExpectations(t)
}

func TestSlotRepository_MarkReserved(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		affected int64
		err      error
		want     bool
		wantErr  bool
	}{
		{name: "flipped", affected: 1, want: true},
		{name: "lost the race", affected: 0, want: false},
		{name: "database error", err: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockSlotWriteQueries)
			q.On("MarkSlotReserved", ctx, mock.Anything, int64(1)).Return(tt.affected, tt.err)

			got, err := NewSlotRepository(q, nil).MarkReserved(ctx, nil, 1)
			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotRepository_UpdateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows means the slot was reserved meanwhile", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("UpdateSlotSchedule", ctx, mock.Anything, mock.AnythingOfType("sqlc.UpdateSlotScheduleParams")).Return(int64(0), nil)

		err := NewSlotRepository(q, nil).UpdateSchedule(ctx, nil, newTestSlot(t, 1, slot.StatusAvailable))
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("updated", func(t *testing.T) {
		q := new(MockSlotWriteQueries)
		q.On("UpdateSlotSchedule", ctx, mock.Anything, sqlc.UpdateSlotScheduleParams{
			ID:        1,
			CatID:     7,
			StartTime: pgconv.TimeToPgtype(ten),
			EndTime:   pgconv.TimeToPgtype(eleven),
		}).Return(int64(1), nil)

		assert.NoError(t, NewSlotRepository(q, nil).UpdateSchedule(ctx, nil, newTestSlot(t, 1, slot.StatusAvailable)))
	})
}

func TestSlotRepository_DeleteAndRelease(t *testing.T) {
	ctx := context.Background()

	q := new(MockSlotWriteQueries)
	q.On("DeleteSlot", ctx, mock.Anything, int64(404)).Return(int64(0), nil)
	q.On("MarkSlotAvailable", ctx, mock.Anything, int64(404)).Return(int64(0), nil)
	q.On("DeleteSlot", ctx, mock.Anything, int64(1)).Return(int64(1), nil)

	repo := NewSlotRepository(q, nil)
	assert.True(t, infra.IsKind(repo.Delete(ctx, nil, 404), infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.MarkAvailable(ctx, nil, 404), infra.KindNotFound))
	assert.NoError(t, repo.Delete(ctx, nil, 1))
}
