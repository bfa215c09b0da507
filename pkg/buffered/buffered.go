package buffered

import "sync"

// BufferedQueue is a bounded FIFO queue on a buffered channel. Peek needs a
// one-element lookahead, which is guarded by a mutex; Enqueue never takes it.
type BufferedQueue[T any] struct {
	ch chan T

	mu      sync.Mutex
	head    T
	hasHead bool
}

func New[T any](bufferSize uint64) *BufferedQueue[T] {
	// A zero-capacity channel is a synchronization point, not a buffer.
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &BufferedQueue[T]{
		ch: make(chan T, bufferSize),
	}
}

// Enqueue blocks while the buffer is full.
func (q *BufferedQueue[T]) Enqueue(val T) {
	q.ch <- val
}

func (q *BufferedQueue[T]) Dequeue() (val T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.hasHead {
		val = q.head
		var zero T
		q.head, q.hasHead = zero, false
		return val, true
	}
	select {
	case val = <-q.ch:
		return val, true
	default:
		return val, false
	}
}

// Peek moves the oldest value into the lookahead slot, if there is one, and
// returns it without consuming it.
func (q *BufferedQueue[T]) Peek() (val T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.hasHead {
		select {
		case q.head = <-q.ch:
			q.hasHead = true
		default:
			return val, false
		}
	}
	return q.head, true
}

func (q *BufferedQueue[T]) IsEmpty() bool {
	return q.UsedSlots() == 0
}

func (q *BufferedQueue[T]) Len() int {
	return int(q.UsedSlots())
}

// FreeSlots does not count the lookahead slot, so it may briefly report one
// more free slot than the channel alone would.
func (q *BufferedQueue[T]) FreeSlots() uint64 {
	return uint64(cap(q.ch) - len(q.ch))
}

func (q *BufferedQueue[T]) UsedSlots() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := uint64(len(q.ch))
	if q.hasHead {
		n++
	}
	return n
}
