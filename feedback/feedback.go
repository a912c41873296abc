// Package feedback tracks short-lived add-to-cart display flags.
package feedback

import (
	"sync"
	"time"
)

// Default flag lifetimes.
const (
	AddingDuration = time.Second
	BounceDuration = 300 * time.Millisecond
)

// Tracker holds the per-product "adding" flags and the cart bounce flag. A reset timer may
// fire after a newer Animate call on the same product; that only clears a display flag.
type Tracker struct {
	mu       sync.Mutex
	adding   map[int]bool
	bouncing bool
	timers   map[*time.Timer]struct{}

	addingFor time.Duration
	bounceFor time.Duration
}

func NewTracker() *Tracker {
	return NewTrackerWithDurations(AddingDuration, BounceDuration)
}

func NewTrackerWithDurations(adding, bounce time.Duration) *Tracker {
	return &Tracker{
		adding:    make(map[int]bool),
		timers:    make(map[*time.Timer]struct{}),
		addingFor: adding,
		bounceFor: bounce,
	}
}

// Animate raises both flags for productID and schedules their reset.
func (t *Tracker) Animate(productID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.adding[productID] = true
	t.bouncing = true

	t.scheduleLocked(t.addingFor, func() { t.adding[productID] = false })
	t.scheduleLocked(t.bounceFor, func() { t.bouncing = false })
}

// scheduleLocked runs reset under the lock after d and forgets the timer once it fired.
func (t *Tracker) scheduleLocked(d time.Duration, reset func()) {
	var tm *time.Timer
	tm = time.AfterFunc(d, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.timers, tm)
		reset()
	})
	t.timers[tm] = struct{}{}
}

func (t *Tracker) pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}

func (t *Tracker) Adding(productID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.adding[productID]
}

func (t *Tracker) Bouncing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bouncing
}

// Close stops pending resets.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for tm := range t.timers {
		tm.Stop()
		delete(t.timers, tm)
	}
}
