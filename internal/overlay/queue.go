// ABOUTME: Mutex-guarded unbounded event queue between capture and the render loop
// ABOUTME: Close records why capture stopped; Drain surfaces it after pending events

package overlay

import (
	"errors"
	"sync"

	"github.com/mauromedda/keycast/internal/keys"
)

// ErrQueueClosed is returned by Push after Close, and by Drain once a queue
// closed without a cause is empty.
var ErrQueueClosed = errors.New("event queue closed")

// Queue hands key events from any number of producers to one consumer.
// Producers never block beyond the mutex.
type Queue struct {
	mu     sync.Mutex
	events []keys.Event
	closed bool
	cause  error
}

// NewQueue creates an open, empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. It fails once the queue is closed.
func (q *Queue) Push(ev keys.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	q.events = append(q.events, ev)
	return nil
}

// Drain removes and returns every pending event in delivery order. When the
// queue has been closed, the close cause is returned alongside the final
// events so the consumer can apply them before stopping.
func (q *Queue) Drain() ([]keys.Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil

	if q.closed {
		return events, q.cause
	}
	return events, nil
}

// Close stops the queue. cause explains why the producer went away; nil
// means ErrQueueClosed. Only the first Close counts.
func (q *Queue) Close(cause error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if cause == nil {
		cause = ErrQueueClosed
	}
	q.closed = true
	q.cause = cause
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
