package readstore

import (
	"context"

	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
	"shelter-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	GetIdempotencyKeyForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyForUpdateParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers decide what an
// expired key means.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return toIdempotencyRecord(row), nil
}

func (r *IdempotencyReadStore) GetForUpdate(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyForUpdateParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKeyForUpdate(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock idempotency key", err)
	}

	return toIdempotencyRecord(row), nil
}

func toIdempotencyRecord(row sqlc.IdempotencyKeys) *shared.IdempotencyRecord {
	return &shared.IdempotencyRecord{
		Key:                 row.Key,
		UserID:              row.UserID,
		Endpoint:            row.Endpoint,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultReservationID: pgconv.Int8PtrFromPgtype(row.ResultReservationID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}
}
