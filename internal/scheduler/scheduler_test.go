package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAfterSameDay(t *testing.T) {
	s := New(9, 0, time.UTC, func() {})

	now := time.Date(2026, 8, 23, 8, 30, 0, 0, time.UTC)
	next := s.nextAfter(now)

	assert.Equal(t, time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), next)
}

func TestNextAfterRollsToTomorrow(t *testing.T) {
	s := New(9, 0, time.UTC, func() {})

	// Exactly at the trigger time the next fire is tomorrow.
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), s.nextAfter(now))

	now = time.Date(2026, 8, 23, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC), s.nextAfter(now))
}

func TestNextAfterAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := New(9, 0, loc, func() {})

	// US DST starts 2026-03-08: the 02:00 hour does not exist. The trigger
	// still lands on 09:00 local, one wall-clock hour "early" in absolute
	// terms.
	now := time.Date(2026, 3, 7, 21, 30, 0, 0, loc)
	next := s.nextAfter(now)

	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc).Day(), next.Day())
	assert.Equal(t, 10*time.Hour+30*time.Minute, next.Sub(now))
}

func TestStartOnlyOnce(t *testing.T) {
	s := New(9, 0, time.UTC, func() {})
	defer s.Stop()

	require.NoError(t, s.Start())
	assert.Error(t, s.Start(), "re-registration is not supported")
}

func TestStopEndsLoop(t *testing.T) {
	fired := make(chan struct{}, 1)
	s := New(0, 0, time.UTC, func() { fired <- struct{}{} })

	require.NoError(t, s.Start())
	s.Stop()

	select {
	case <-fired:
		t.Fatal("job fired after stop")
	case <-time.After(50 * time.Millisecond):
	}
}
