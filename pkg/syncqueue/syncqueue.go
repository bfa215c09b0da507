package syncqueue

import (
	"sync"

	"github.com/i5heu/GoStateHooks/internal/queue"
	"github.com/i5heu/GoStateHooks/pkg/linkedqueue"
)

// Queue serializes every call to the wrapped queue behind one mutex.
type Queue[T any] struct {
	mu    sync.Mutex
	inner queue.PeekableQueue[T]
}

// Sync wraps q so it can be shared between goroutines.
// q must not be used directly afterwards.
func Sync[T any](q queue.PeekableQueue[T]) *Queue[T] {
	return &Queue[T]{inner: q}
}

// New creates a synchronized linked queue holding initial in order.
func New[T any](initial ...T) *Queue[T] {
	return Sync[T](linkedqueue.New(initial...))
}

// Enqueue appends value under the lock.
func (q *Queue[T]) Enqueue(value T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.inner.Enqueue(value)
}

// Dequeue removes the oldest value under the lock, or returns the zero value and false.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.Dequeue()
}

// Peek returns the oldest value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.Peek()
}

// IsEmpty reports whether the wrapped queue is empty.
func (q *Queue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.IsEmpty()
}

// Len returns how many values are queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.Len()
}

// FreeSlots forwards to the wrapped queue.
func (q *Queue[T]) FreeSlots() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.FreeSlots()
}

// UsedSlots forwards to the wrapped queue.
func (q *Queue[T]) UsedSlots() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.inner.UsedSlots()
}
