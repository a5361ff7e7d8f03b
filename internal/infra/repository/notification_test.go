//go:build unit

package repository

import (
	"context"
	"testing"

	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	payload := []byte(`{"reservation_id":1}`)

	q := new(MockNotificationWriteQueries)
	q.On("CreateNotificationJob", ctx, mock.Anything, sqlc.CreateNotificationJobParams{
		ID:      jobID,
		Kind:    "reservation.created",
		Topic:   "reservation",
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(ten),
		Status:  "queued",
	}).Return(nil)

	repo := NewNotificationRepository(q, nil)
	repo.newID = func() uuid.UUID { return jobID }

	assert.NoError(t, repo.CreateJob(ctx, nil, "reservation.created", "reservation", payload, ten))
	q.AssertExpectations(t)
}
