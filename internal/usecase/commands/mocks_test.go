//go:build unit

package commands

import (
	"context"
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"
	"shelter-scheduler/internal/usecase/queries"
	"shelter-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs every callback on the same mocked transaction.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		slots:         new(mockSlotRepository),
		reservations:  new(mockReservationRepository),
		idempotency:   new(mockIdempotencyRepository),
		notifications: new(mockNotificationRepository),
		users:         new(mockUserRepository),
		reads:         new(mockCommandReads),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.tx.reads }

func (u *fakeUoW) assertExpectations(t mock.TestingT) {
	u.tx.slots.AssertExpectations(t)
	u.tx.reservations.AssertExpectations(t)
	u.tx.idempotency.AssertExpectations(t)
	u.tx.notifications.AssertExpectations(t)
	u.tx.users.AssertExpectations(t)
	u.tx.reads.AssertExpectations(t)
}

type fakeTx struct {
	slots         *mockSlotRepository
	reservations  *mockReservationRepository
	idempotency   *mockIdempotencyRepository
	notifications *mockNotificationRepository
	users         *mockUserRepository
	reads         *mockCommandReads
}

func (t *fakeTx) Slots() shared.SlotRepository                 { return t.slots }
func (t *fakeTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return t.idempotency }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }

type mockCommandReads struct {
	mock.Mock
}

func (m *mockCommandReads) CatByID(ctx context.Context, id int64) (*shared.CatSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.CatSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) VolunteerByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.UserSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) SlotByID(ctx context.Context, id int64) (*shared.SlotSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.SlotSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) SlotForUpdate(ctx context.Context, id int64) (*shared.SlotSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.SlotSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) ReservationForUpdate(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*shared.ReservationSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommandReads) HasReservation(ctx context.Context, slotID, volunteerID int64, statuses []reservation.Status) (bool, error) {
	args := m.Called(ctx, slotID, volunteerID, statuses)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommandReads) CountReservations(ctx context.Context, slotID int64, statuses []reservation.Status) (int64, error) {
	args := m.Called(ctx, slotID, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommandReads) IdempotencyForUpdate(ctx context.Context, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	args := m.Called(ctx, key, userID)
	if v := args.Get(0); v != nil {
		return v.(*shared.IdempotencyRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSlotRepository struct {
	mock.Mock
}

func (m *mockSlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (int64, error) {
	args := m.Called(ctx, tx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSlotRepository) UpdateSchedule(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	return m.Called(ctx, tx, s).Error(0)
}

func (m *mockSlotRepository) MarkReserved(ctx context.Context, tx sqlc.DBTX, id int64) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSlotRepository) MarkAvailable(ctx context.Context, tx sqlc.DBTX, id int64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockSlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	return m.Called(ctx, tx, id).Error(0)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error) {
	args := m.Called(ctx, tx, res)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error {
	return m.Called(ctx, tx, id, status).Error(0)
}

func (m *mockReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	return m.Called(ctx, tx, id).Error(0)
}

type mockIdempotencyRepository struct {
	mock.Mock
}

func (m *mockIdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, tx, key, userID, endpoint, requestHash, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, tx, key, userID, endpoint, requestHash, now, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID int64, reservationID int64) error {
	return m.Called(ctx, tx, key, userID, reservationID).Error(0)
}

func (m *mockIdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	return m.Called(ctx, tx, kind, topic, payload, runAt).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64) error {
	return m.Called(ctx, tx, userID).Error(0)
}

type mockReservationQueries struct {
	mock.Mock
}

func (m *mockReservationQueries) GetByID(ctx context.Context, actor shared.Actor, id int64) (*queries.ReservationView, error) {
	args := m.Called(ctx, actor, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ReservationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationQueries) GetByIDSystem(ctx context.Context, id int64) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ReservationView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationQueries) List(ctx context.Context, actor shared.Actor, after *queries.Cursor, limit int) ([]*queries.ReservationView, *queries.Cursor, error) {
	args := m.Called(ctx, actor, after, limit)
	return args.Get(0).([]*queries.ReservationView), args.Get(1).(*queries.Cursor), args.Error(2)
}

func (m *mockReservationQueries) Overview(ctx context.Context, actor shared.Actor, volunteerID *int64) ([]*queries.OverviewRow, error) {
	args := m.Called(ctx, actor, volunteerID)
	return args.Get(0).([]*queries.OverviewRow), args.Error(1)
}

func (m *mockReservationQueries) Ongoing(ctx context.Context, actor shared.Actor) ([]*queries.OverviewRow, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]*queries.OverviewRow), args.Error(1)
}

func (m *mockReservationQueries) Concluded(ctx context.Context, actor shared.Actor) ([]*queries.OverviewRow, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]*queries.OverviewRow), args.Error(1)
}

// recordingMetrics counts what the commands report.
type recordingMetrics struct {
	shared.NopMetrics
	created  int
	rejected []string
	replays  int
	slots    int
}

func (m *recordingMetrics) SlotsCreated(n int)  { m.slots += n }
func (m *recordingMetrics) ReservationCreated() { m.created++ }
func (m *recordingMetrics) ReservationRejected(reason string) {
	m.rejected = append(m.rejected, reason)
}
func (m *recordingMetrics) IdempotentReplay() { m.replays++ }
