package main

import (
	"math"

	"github.com/gammazero/deque"
)

// dequeQueue adapts a ring-buffer deque to the queue interface so it can be
// compared against the linked queue.
type dequeQueue[T any] struct {
	d deque.Deque[T]
}

func newDequeQueue[T any]() *dequeQueue[T] {
	return &dequeQueue[T]{}
}

func (q *dequeQueue[T]) Enqueue(v T) {
	q.d.PushBack(v)
}

func (q *dequeQueue[T]) Dequeue() (T, bool) {
	if q.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.d.PopFront(), true
}

func (q *dequeQueue[T]) Peek() (T, bool) {
	if q.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.d.Front(), true
}

func (q *dequeQueue[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

func (q *dequeQueue[T]) Len() int {
	return q.d.Len()
}

func (q *dequeQueue[T]) FreeSlots() uint64 {
	return math.MaxUint64 - q.UsedSlots()
}

func (q *dequeQueue[T]) UsedSlots() uint64 {
	return uint64(q.d.Len())
}
