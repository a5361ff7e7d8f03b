//go:build unit

package components

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "shelter-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

type fakeIdempotencyRepo struct {
	purged int64
	err    error
	calls  int
}

func (f *fakeIdempotencyRepo) TryInsert(context.Context, sqlc.DBTX, uuid.UUID, int64, string, string, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeIdempotencyRepo) ClaimExpired(context.Context, sqlc.DBTX, uuid.UUID, int64, string, string, time.Time, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeIdempotencyRepo) UpdateStatusCompleted(context.Context, sqlc.DBTX, uuid.UUID, int64, int64) error {
	return nil
}

func (f *fakeIdempotencyRepo) DeleteExpired(context.Context) (int64, error) {
	f.calls++
	return f.purged, f.err
}

func TestPurgeExpiredIdempotencyKeys(t *testing.T) {
	t.Run("purges once on start", func(t *testing.T) {
		repo := &fakeIdempotencyRepo{purged: 3}
		lc := fxtest.NewLifecycle(t)

		PurgeExpiredIdempotencyKeys(lc, repo)
		lc.RequireStart()
		lc.RequireStop()

		assert.Equal(t, 1, repo.calls)
	})

	t.Run("a failed purge does not block startup", func(t *testing.T) {
		repo := &fakeIdempotencyRepo{err: errors.New("connection refused")}
		lc := fxtest.NewLifecycle(t)

		PurgeExpiredIdempotencyKeys(lc, repo)

		assert.NoError(t, lc.Start(context.Background()))
		assert.Equal(t, 1, repo.calls)
		lc.RequireStop()
	})
}
