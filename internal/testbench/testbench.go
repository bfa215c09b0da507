package testbench

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/i5heu/GoStateHooks/internal/queue"
)

// Config is only about concurrency: how many producers, how many consumers.
type Config struct {
	NumProducers int `yaml:"producers"`
	NumConsumers int `yaml:"consumers"`
}

// Result is the outcome of one timed run.
type Result struct {
	Produced int64
	Consumed int64
	Elapsed  time.Duration
}

// Throughput returns consumed messages per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Consumed) / r.Elapsed.Seconds()
}

// RunTimedTest spawns producers and consumers that run until ctx is done or
// testDuration passes, counting how many messages go through the queue. Once
// production stops, consumers drain what is left before it returns.
func RunTimedTest[T any, Q queue.QueueValidationInterface[T]](
	ctx context.Context,
	q Q,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) Result {
	ctx, cancel := context.WithTimeout(ctx, testDuration)
	defer cancel()

	var (
		totalProduced atomic.Int64
		totalConsumed atomic.Int64
		msgIndex      atomic.Int64
		stopped       atomic.Bool
		producersDone atomic.Bool
	)

	start := time.Now()

	var prodWg sync.WaitGroup
	prodWg.Add(cfg.NumProducers)
	for range cfg.NumProducers {
		go func() {
			defer prodWg.Done()
			for !stopped.Load() {
				idx := msgIndex.Add(1) - 1
				q.Enqueue(valueGenerator(int(idx)))
				totalProduced.Add(1)
			}
		}()
	}

	var consWg sync.WaitGroup
	consWg.Add(cfg.NumConsumers)
	for range cfg.NumConsumers {
		go func() {
			defer consWg.Done()
			for {
				if _, ok := q.Dequeue(); ok {
					totalConsumed.Add(1)
					continue
				}
				if producersDone.Load() && q.UsedSlots() == 0 {
					return
				}
				runtime.Gosched()
			}
		}()
	}

	<-ctx.Done()
	stopped.Store(true)
	prodWg.Wait()
	producersDone.Store(true)
	consWg.Wait()

	return Result{
		Produced: totalProduced.Load(),
		Consumed: totalConsumed.Load(),
		Elapsed:  time.Since(start),
	}
}

// RunDrain enqueues n generated values, then dequeues until the queue reports
// empty, returning what came out in order.
func RunDrain[T any, Q queue.QueueValidationInterface[T]](q Q, n int, valueGenerator func(int) T) []T {
	for i := range n {
		q.Enqueue(valueGenerator(i))
	}

	out := make([]T, 0, n)
	for {
		v, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
