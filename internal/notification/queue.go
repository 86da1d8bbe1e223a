package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification kinds
const (
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindInfo    = "info"
)

// Notification is one ephemeral toast message. Notifications never survive
// a restart.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// Queue holds a small ordered list of notifications. Each entry is removed
// automatically once its display duration elapses, or earlier on Dismiss.
type Queue struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	ttl    time.Duration
	closed bool
}

// NewQueue creates a queue whose entries expire after ttl
func NewQueue(ttl time.Duration) *Queue {
	return &Queue{
		items:  []Notification{},
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
	}
}

// Push enqueues a notification and schedules its expiry
func (q *Queue) Push(message, kind string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return n
	}

	q.items = append(q.items, n)
	if q.ttl > 0 {
		q.timers[n.ID] = time.AfterFunc(q.ttl, func() {
			q.Dismiss(n.ID)
		})
	}
	return n
}

// Dismiss removes a notification before its expiry. Dismissing an unknown
// id is a no-op.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}

	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the pending notifications in enqueue order
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Close stops every pending expiry timer so no callback fires after the
// owner is gone.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = []Notification{}
}
