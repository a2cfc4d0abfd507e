package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_FiresInOrder(t *testing.T) {
	var clock Clock
	s := NewScheduler(&clock)

	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "early") })
	s.After(100*time.Millisecond, func() { order = append(order, "early-2") })

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, s.Run())

	clock.Advance(50 * time.Millisecond)
	require.Equal(t, 2, s.Run())
	assert.Equal(t, []string{"early", "early-2"}, order)

	clock.Advance(time.Second)
	require.Equal(t, 1, s.Run())
	assert.Equal(t, []string{"early", "early-2", "late"}, order)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_ZeroDelayFromCallback(t *testing.T) {
	var clock Clock
	s := NewScheduler(&clock)

	fired := false
	s.After(0, func() {
		s.After(0, func() { fired = true })
	})

	assert.Equal(t, 2, s.Run())
	assert.True(t, fired)
}

func TestClock_IgnoresNegative(t *testing.T) {
	var clock Clock
	clock.Advance(time.Second)
	clock.Advance(-time.Second)
	assert.Equal(t, time.Second, clock.Now())
}

func TestScheduler_NextDue(t *testing.T) {
	var clock Clock
	s := NewScheduler(&clock)

	_, ok := s.NextDue()
	assert.False(t, ok)

	s.After(300*time.Millisecond, func() {})
	s.After(100*time.Millisecond, func() {})
	due, ok := s.NextDue()
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, due)

	clock.Advance(100 * time.Millisecond)
	s.Run()
	due, ok = s.NextDue()
	require.True(t, ok)
	assert.Equal(t, 300*time.Millisecond, due)
}
