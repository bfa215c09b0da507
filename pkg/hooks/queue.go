package hooks

import "github.com/i5heu/GoStateHooks/pkg/linkedqueue"

// Queue is a FIFO queue whose Enqueue and Dequeue re-render the owning
// component. Peek, IsEmpty and the size accessors do not.
type Queue[T any] struct {
	c *Component
	q *linkedqueue.Queue[T]
}

// UseQueue returns the component's queue for this slot, seeded with initial
// on first use.
func UseQueue[T any](c *Component, initial []T) *Queue[T] {
	return use(c, func() *Queue[T] {
		return &Queue[T]{c: c, q: linkedqueue.New(initial...)}
	})
}

// Enqueue appends value at the tail and renders.
func (q *Queue[T]) Enqueue(value T) {
	q.q.Enqueue(value)
	q.c.notify("enqueue")
}

// Dequeue removes the oldest value. On an empty queue it returns the zero
// value and false, and still renders.
func (q *Queue[T]) Dequeue() (T, bool) {
	v, ok := q.q.Dequeue()
	q.c.notify("dequeue")
	return v, ok
}

// Peek returns the oldest value without removing it, or the zero value and false.
func (q *Queue[T]) Peek() (T, bool) {
	return q.q.Peek()
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.q.IsEmpty()
}

// Len returns how many values are queued.
func (q *Queue[T]) Len() int {
	return q.q.Len()
}

// Values returns the queued values from oldest to newest.
func (q *Queue[T]) Values() []T {
	return q.q.Values()
}

// FreeSlots reports the remaining capacity of the unbounded queue.
func (q *Queue[T]) FreeSlots() uint64 {
	return q.q.FreeSlots()
}

// UsedSlots returns how many values are queued.
func (q *Queue[T]) UsedSlots() uint64 {
	return q.q.UsedSlots()
}
