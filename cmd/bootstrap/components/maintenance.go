package components

import (
	"context"
	"log/slog"

	"shelter-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var MaintenanceModule = fx.Module("maintenance",
	fx.Invoke(PurgeExpiredIdempotencyKeys),
)

// PurgeExpiredIdempotencyKeys drops idempotency records past their TTL once
// per start. Expired keys are also reclaimed lazily on reuse.
func PurgeExpiredIdempotencyKeys(lc fx.Lifecycle, repo shared.IdempotencyRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			count, err := repo.DeleteExpired(ctx)
			if err != nil {
				slog.Warn("failed to purge expired idempotency keys", "error", err.Error())
				return nil
			}
			slog.Info("purged expired idempotency keys", "count", count)
			return nil
		},
	})
}
