package readstore

import (
	"context"

	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"
	"shelter-scheduler/internal/usecase/shared"
)

type CatReadQueries interface {
	GetCatByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Cats, error)
}

// CatReadStore is the existence check against the cat registry.
type CatReadStore struct {
	queries CatReadQueries
	db      sqlc.DBTX
}

func NewCatReadStore(queries CatReadQueries, db sqlc.DBTX) *CatReadStore {
	return &CatReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatReadStore) FindByID(ctx context.Context, id int64) (*shared.CatSnapshot, error) {
	row, err := r.queries.GetCatByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cat not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cat by ID", err)
	}

	return &shared.CatSnapshot{ID: row.ID, Name: row.Name}, nil
}
