//go:build unit

package repository

import (
	"context"
	"testing"

	"shelter-scheduler/internal/infra"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id int64) error {
	return m.Called(ctx, db, id).Error(0)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "stamped"},
		{name: "connection lost", queryErr: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "serialization failure", queryErr: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("UpdateUserLastLogin", mock.Anything, mock.Anything, int64(42)).Return(tt.queryErr)

			err := NewUserRepository(q).UpdateLastLogin(context.Background(), nil, 42)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}
