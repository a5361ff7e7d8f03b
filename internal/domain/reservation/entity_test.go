//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"shelter-scheduler/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestDay = time.Date(2025, 6, 1, 15, 42, 0, 0, time.UTC)

func reconstruct(t *testing.T, status reservation.Status) *reservation.Reservation {
	t.Helper()
	r, err := reservation.ReconstructReservation(1, 10, 20, requestDay, status, requestDay, requestDay)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Run("starts pending on the request day", func(t *testing.T) {
		r, err := reservation.NewReservation(10, 20, requestDay)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.True(t, r.IsActive())
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), r.RequestDate())
		assert.True(t, r.IsOwnedBy(20))
		assert.False(t, r.IsOwnedBy(21))
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := reservation.NewReservation(0, 20, requestDay)
		assert.ErrorIs(t, err, reservation.ErrInvalidSlotID)

		_, err = reservation.NewReservation(10, -1, requestDay)
		assert.ErrorIs(t, err, reservation.ErrInvalidVolunteerID)
	})
}

func TestTransitionTable(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:    {reservation.StatusApproved, reservation.StatusRejected, reservation.StatusCancelled},
		reservation.StatusApproved:   {reservation.StatusInProgress, reservation.StatusRejected, reservation.StatusCancelled},
		reservation.StatusInProgress: {reservation.StatusCompleted, reservation.StatusRejected, reservation.StatusCancelled},
	}

	for _, from := range reservation.AllStatuses() {
		for _, to := range reservation.AllStatuses() {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				r := reconstruct(t, from)
				change, err := r.TransitionTo(to)

				switch {
				case from == to:
					require.NoError(t, err)
					assert.True(t, change.IsNoop())
					assert.False(t, change.ReleasesSlot)
				case contains(allowed[from], to):
					require.NoError(t, err)
					assert.Equal(t, to, r.Status())
					assert.Equal(t, from.IsActive() && !to.IsActive(), change.ReleasesSlot)
				default:
					assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
					assert.Equal(t, from, r.Status(), "failed transition must not mutate")
				}
			})
		}
	}
}

func TestRejectOrCancelAlwaysReleasesAnActiveReservation(t *testing.T) {
	for _, from := range reservation.ActiveStatuses() {
		for _, to := range []reservation.Status{reservation.StatusRejected, reservation.StatusCancelled} {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				r := reconstruct(t, from)
				change, err := r.TransitionTo(to)
				require.NoError(t, err)
				assert.True(t, change.ReleasesSlot)
				assert.Equal(t, to, r.Status())
			})
		}
	}
}

func TestRejectIsRefusedOnceConcluded(t *testing.T) {
	for _, from := range []reservation.Status{reservation.StatusCompleted, reservation.StatusCancelled} {
		r := reconstruct(t, from)
		_, err := r.TransitionTo(reservation.StatusRejected)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition, from.String())
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	r := reconstruct(t, reservation.StatusPending)
	_, err := r.TransitionTo(reservation.Status(42))
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestStatusPartition(t *testing.T) {
	var active, inactive int
	for v := -3; v <= 10; v++ {
		s := reservation.Status(v)
		if !s.IsValid() {
			continue
		}
		if s.IsActive() {
			active++
			assert.False(t, s.IsTerminal(), s.String())
		} else {
			inactive++
			assert.True(t, s.IsTerminal(), s.String())
		}
	}
	assert.Equal(t, len(reservation.ActiveStatuses()), active)
	assert.Equal(t, len(reservation.AllStatuses()), active+inactive)
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus(4)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusInProgress, s)
	assert.Equal(t, "IN_PROGRESS", s.String())

	_, err = reservation.ParseStatus(6)
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

	assert.Equal(t, []int16{0, 1, 4}, reservation.StatusValues(reservation.ActiveStatuses()))
}

func contains(list []reservation.Status, s reservation.Status) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
