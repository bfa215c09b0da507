package linkedqueue

import "math"

// Node is one element of the chain. Its value is fixed at creation.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// NewNode creates a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// SetNext replaces the forward link. No cycle check is performed.
func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

// Queue is an unbounded FIFO queue built on singly linked nodes.
// It is not safe for concurrent use; wrap it with syncqueue.Sync for that.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head *Node[T] // next to be dequeued; nil iff empty
	tail *Node[T] // last enqueued; nil iff empty
	n    int
}

// New creates a queue holding initial in order, so initial[0] is dequeued first.
func New[T any](initial ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range initial {
		q.Enqueue(v)
	}
	return q
}

// Enqueue appends value at the tail.
func (q *Queue[T]) Enqueue(value T) {
	node := NewNode(value)
	q.n++

	if q.head == nil {
		q.head = node
		q.tail = node
		return
	}

	q.tail.SetNext(node)
	q.tail = node
}

// Dequeue removes and returns the oldest value.
// If the queue is empty it returns the zero value and false.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	node := q.head
	q.head = node.Next()
	if q.head == nil {
		q.tail = nil
	}
	// Detach so the removed node keeps nothing in the chain alive.
	node.SetNext(nil)
	q.n--

	return node.Value(), true
}

// Peek returns the oldest value without removing it.
// If the queue is empty it returns the zero value and false.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.Value(), true
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Len returns how many values are queued.
func (q *Queue[T]) Len() int {
	return q.n
}

// UsedSlots returns how many values are queued.
func (q *Queue[T]) UsedSlots() uint64 {
	return uint64(q.n)
}

// FreeSlots returns how many more values fit. The queue is unbounded, so this
// is only limited by the counter width.
func (q *Queue[T]) FreeSlots() uint64 {
	return math.MaxUint64 - q.UsedSlots()
}

// Values returns a copy of the queued values from head to tail.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.n)
	for node := q.head; node != nil; node = node.Next() {
		out = append(out, node.Value())
	}
	return out
}
