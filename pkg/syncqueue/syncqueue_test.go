package syncqueue

import (
	"runtime"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/i5heu/GoStateHooks/internal/queue"
	"github.com/i5heu/GoStateHooks/pkg/linkedqueue"
)

var _ queue.PeekableQueue[int] = (*Queue[int])(nil)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSingleThreadedBehaviour(t *testing.T) {
	q := New(1, 2)

	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, uint64(2), q.UsedSlots())

	q.Enqueue(3)
	for _, want := range []int{1, 2, 3} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestSyncWrapsExistingQueue(t *testing.T) {
	inner := linkedqueue.New("a")
	q := Sync[string](inner)

	q.Enqueue("b")
	assert.Equal(t, []string{"a", "b"}, inner.Values())
	assert.Equal(t, inner.FreeSlots(), q.FreeSlots())
}

func TestConcurrentProducersConsumers(t *testing.T) {
	const (
		numProducers        = 8
		numConsumers        = 8
		messagesPerProducer = 2000
	)
	total := numProducers * messagesPerProducer

	q := New[int]()

	var prodWg sync.WaitGroup
	prodWg.Add(numProducers)
	for p := range numProducers {
		go func(p int) {
			defer prodWg.Done()
			for j := range messagesPerProducer {
				q.Enqueue(p*messagesPerProducer + j)
			}
		}(p)
	}

	var (
		mu       sync.Mutex
		received []int
		consWg   sync.WaitGroup
	)
	remaining := make(chan struct{}, total)
	for range total {
		remaining <- struct{}{}
	}
	close(remaining)

	consWg.Add(numConsumers)
	for range numConsumers {
		go func() {
			defer consWg.Done()
			// Each token stands for one message this consumer must take.
			for range remaining {
				for {
					v, ok := q.Dequeue()
					if ok {
						mu.Lock()
						received = append(received, v)
						mu.Unlock()
						break
					}
					runtime.Gosched()
				}
			}
		}()
	}

	prodWg.Wait()
	consWg.Wait()

	require.Len(t, received, total)
	sort.Ints(received)
	for i, v := range received {
		require.Equal(t, i, v, "missing or duplicated message")
	}
	assert.True(t, q.IsEmpty())
}

func TestPerProducerOrderPreserved(t *testing.T) {
	const perProducer = 1000
	q := New[[2]int]()

	var wg sync.WaitGroup
	wg.Add(2)
	for p := range 2 {
		go func(p int) {
			defer wg.Done()
			for j := range perProducer {
				q.Enqueue([2]int{p, j})
			}
		}(p)
	}
	wg.Wait()

	last := map[int]int{0: -1, 1: -1}
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		require.Greater(t, v[1], last[v[0]], "producer %d out of order", v[0])
		last[v[0]] = v[1]
	}
	assert.Equal(t, perProducer-1, last[0])
	assert.Equal(t, perProducer-1, last[1])
}
