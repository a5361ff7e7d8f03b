//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shelter-scheduler/internal/domain/reservation"
	"shelter-scheduler/internal/domain/slot"
	"shelter-scheduler/internal/domain/user"
	sqlc "shelter-scheduler/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email string, role user.Role) int64 {
	t.Helper()

	username, _, _ := strings.Cut(email, "@")
	ctx := context.Background()

	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, first_name, last_name, email, password_hash, role, is_active)
		VALUES ($1, $2, 'Tester', $3, $4, $5, true)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		username, username, email, TestPasswordHash, int16(role)).Scan(&id)
	require.NoError(t, err)

	return id
}

func DeactivateUser(t *testing.T, db DBLike, id int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateTestCat(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO cats (name, species_id, age)
		VALUES ($1, (SELECT id FROM species WHERE name = 'Domestic Shorthair'), 3)
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestSlot(t *testing.T, db DBLike, catID int64, start time.Time, d time.Duration, status slot.Status) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO slots (cat_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, catID, start, start.Add(d), int16(status)).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestReservation(t *testing.T, db DBLike, slotID, volunteerID int64, status reservation.Status) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservation_requests (slot_id, volunteer_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`, slotID, volunteerID, int16(status)).Scan(&id)
	require.NoError(t, err)

	return id
}

func SlotStatus(t *testing.T, db DBLike, slotID int64) slot.Status {
	t.Helper()

	var status int16
	err := db.QueryRow(context.Background(), "SELECT status FROM slots WHERE id = $1", slotID).Scan(&status)
	require.NoError(t, err)

	return slot.Status(status)
}

func ReservationStatus(t *testing.T, db DBLike, id int64) reservation.Status {
	t.Helper()

	var status int16
	err := db.QueryRow(context.Background(), "SELECT status FROM reservation_requests WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)

	return reservation.Status(status)
}

// CountActiveReservations counts PENDING, APPROVED and IN_PROGRESS rows of a slot.
func CountActiveReservations(t *testing.T, db DBLike, slotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservation_requests WHERE slot_id = $1 AND status IN (0, 1, 4)", slotID).Scan(&n)
	require.NoError(t, err)

	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO species (name) VALUES
		    ('Domestic Shorthair'),
		    ('Maine Coon')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// NotificationJobs returns the outbox rows of a topic, oldest first.
func NotificationJobs(t *testing.T, db sqlc.DBTX, topic string) []sqlc.NotificationJobs {
	t.Helper()

	jobs, err := sqlc.New().ListNotificationJobsByTopic(context.Background(), db, topic)
	require.NoError(t, err)

	return jobs
}
