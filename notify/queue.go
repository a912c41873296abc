// Package notify implements the queue of short-lived user notifications.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
	Warning Severity = "warning"
)

// DefaultTimeout is how long a notification stays visible unless told otherwise.
const DefaultTimeout = 3 * time.Second

// Notification is one queued message.
type Notification struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Severity Severity      `json:"type"`
	Timeout  time.Duration `json:"timeout"`
}

// Queue holds notifications in arrival order and dismisses timed ones automatically.
type Queue struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	closed bool
}

func NewQueue() *Queue {
	return &Queue{timers: make(map[string]*time.Timer)}
}

// Add appends a notification and returns its id. A positive timeout schedules removal;
// zero keeps the notification until Remove is called.
func (q *Queue) Add(message string, severity Severity, timeout time.Duration) string {
	if severity == "" {
		severity = Info
	}
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Timeout:  timeout,
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, n)
	if timeout > 0 && !q.closed {
		id := n.ID
		q.timers[id] = time.AfterFunc(timeout, func() { q.Remove(id) })
	}
	return n.ID
}

// Remove dismisses the notification with id. Unknown ids are ignored.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	out := q.items[:0]
	for _, n := range q.items {
		if n.ID != id {
			out = append(out, n)
		}
	}
	q.items = out
}

// List returns the visible notifications, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Close stops pending dismissal timers. Queued notifications stay until removed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.closed = true
}
