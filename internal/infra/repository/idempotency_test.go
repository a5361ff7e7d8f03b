//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyWriteQueries struct {
	mock.Mock
}

func (m *MockIdempotencyWriteQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyWriteQueries) UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockIdempotencyWriteQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	key := uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	expiresAt := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		affected int64
		queryErr error
		want     bool
	}{
		{name: "expired row is taken over", affected: 1, want: true},
		{name: "row still live", affected: 0, want: false},
		{name: "query fails", queryErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockIdempotencyWriteQueries)
			q.On("ClaimExpiredIdempotencyKey", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ClaimExpiredIdempotencyKeyParams) bool {
				// expiry is judged against the caller's clock
				return p.Key == key && p.UserID == 7 && p.RequestHash == "h" &&
					p.Now.Valid && p.Now.Time.Equal(now) && p.ExpiresAt.Time.Equal(expiresAt)
			})).Return(tt.affected, tt.queryErr).Once()

			got, err := NewIdempotencyRepository(q, nil).ClaimExpired(context.Background(), nil, key, 7, "POST /api/reservations", "h", now, expiresAt)

			if tt.queryErr != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			q.AssertExpectations(t)
		})
	}
}
