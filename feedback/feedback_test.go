package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_FlagsReset(t *testing.T) {
	tr := NewTrackerWithDurations(40*time.Millisecond, 10*time.Millisecond)
	defer tr.Close()

	tr.Animate(3)
	assert.True(t, tr.Adding(3))
	assert.True(t, tr.Bouncing())
	assert.False(t, tr.Adding(4))

	require.Eventually(t, func() bool { return !tr.Bouncing() }, time.Second, 2*time.Millisecond)
	require.Eventually(t, func() bool { return !tr.Adding(3) }, time.Second, 2*time.Millisecond)
}

func TestTracker_CloseCancelsResets(t *testing.T) {
	tr := NewTrackerWithDurations(10*time.Millisecond, 10*time.Millisecond)
	tr.Animate(1)
	tr.Close()

	time.Sleep(40 * time.Millisecond)
	assert.True(t, tr.Adding(1))
	assert.True(t, tr.Bouncing())
}

func TestTracker_FiredTimersAreDropped(t *testing.T) {
	tr := NewTrackerWithDurations(5*time.Millisecond, 5*time.Millisecond)
	defer tr.Close()

	for i := 0; i < 20; i++ {
		tr.Animate(i % 3)
	}

	require.Eventually(t, func() bool { return tr.pending() == 0 }, time.Second, 2*time.Millisecond)
	assert.False(t, tr.Bouncing())
	assert.False(t, tr.Adding(0))
}
