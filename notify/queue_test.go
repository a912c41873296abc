package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_AddAndRemove(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	first := q.Add("Added to cart", Success, 0)
	second := q.Add("Not enough stock available", Error, 0)
	require.NotEqual(t, first, second)

	list := q.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Added to cart", list[0].Message)
	assert.Equal(t, Error, list[1].Severity)

	q.Remove(first)
	list = q.List()
	require.Len(t, list, 1)
	assert.Equal(t, second, list[0].ID)

	q.Remove("unknown")
	assert.Len(t, q.List(), 1)
}

func TestQueue_DefaultSeverity(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Add("hello", "", 0)
	assert.Equal(t, Info, q.List()[0].Severity)
}

func TestQueue_TimedDismissal(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Add("short lived", Info, 20*time.Millisecond)
	q.Add("sticky", Warning, 0)

	require.Eventually(t, func() bool {
		return len(q.List()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "sticky", q.List()[0].Message)
}

func TestQueue_CloseStopsTimers(t *testing.T) {
	q := NewQueue()
	q.Add("pending", Info, 20*time.Millisecond)
	q.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, q.List(), 1)

	q.Add("after close", Info, 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Len(t, q.List(), 2)
}
