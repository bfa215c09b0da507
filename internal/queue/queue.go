package queue

// QueueValidationInterface is a *type constraint* that ensures any type Q has
// these methods. Benchmarked and wrapped queues must satisfy it.
type QueueValidationInterface[T any] interface {
	// Enqueue adds an element to the queue.
	Enqueue(T)

	// Dequeue removes and returns the oldest element.
	// If the queue is empty it returns an empty T and false, otherwise true.
	Dequeue() (T, bool)

	// FreeSlots returns how many more elements can be enqueued before the queue is full.
	FreeSlots() uint64

	// UsedSlots returns how many elements are currently queued.
	UsedSlots() uint64
}

// PeekableQueue is a FIFO queue that can also be inspected without mutation.
// The hook layer and the synchronized wrapper are built against it.
type PeekableQueue[T any] interface {
	QueueValidationInterface[T]

	// Peek returns the oldest element without removing it, or an empty T and false.
	Peek() (T, bool)

	// IsEmpty reports whether no element is queued.
	IsEmpty() bool

	// Len returns how many elements are queued.
	Len() int
}
