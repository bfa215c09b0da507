package main

import (
	"slices"

	"github.com/i5heu/GoStateHooks/internal/queue"
	"github.com/i5heu/GoStateHooks/internal/report"
	"github.com/i5heu/GoStateHooks/pkg/buffered"
	"github.com/i5heu/GoStateHooks/pkg/hooks"
	"github.com/i5heu/GoStateHooks/pkg/syncqueue"
)

type benchQueue = queue.PeekableQueue[*int]

// Implementation represents a queue implementation.
type Implementation[T any, Q queue.PeekableQueue[T]] struct {
	name        string
	description string
	pkgName     string
	authors     []string
	features    []string
	newQueue    func(capacity uint64) Q
}

func (impl Implementation[T, Q]) meta() report.Meta {
	return report.Meta{PkgName: impl.pkgName, Features: impl.features, Authors: impl.authors}
}

var authors = []string{"Mia Heidenstedt <heidenstedt.org>"}

// getImplementations enumerates the benchmarked queues. Only the bounded
// channel baseline uses the capacity hint.
func getImplementations() []Implementation[*int, benchQueue] {
	return []Implementation[*int, benchQueue]{
		{
			name:        "LinkedQueue (mutex)",
			pkgName:     "syncqueue",
			description: "The singly linked FIFO queue behind one mutex.",
			authors:     authors,
			features:    []string{"MPMC", "FIFO", "Unbounded"},
			newQueue: func(uint64) benchQueue {
				return syncqueue.New[*int]()
			},
		},
		{
			name:        "ObservedQueue (mutex)",
			pkgName:     "hooks",
			description: "The hook-layer queue, rendering on every mutation, behind one mutex.",
			authors:     authors,
			features:    []string{"MPMC", "FIFO", "Unbounded", "Observed"},
			newQueue: func(uint64) benchQueue {
				c := hooks.NewComponent()
				return syncqueue.Sync[*int](hooks.UseQueue[*int](c, nil))
			},
		},
		{
			name:        "Deque (mutex)",
			pkgName:     "deque",
			description: "A ring-buffer deque used as a FIFO behind one mutex.",
			authors:     authors,
			features:    []string{"MPMC", "FIFO", "Unbounded"},
			newQueue: func(uint64) benchQueue {
				return syncqueue.Sync[*int](newDequeQueue[*int]())
			},
		},
		{
			name:        "Golang Buffered Channel",
			pkgName:     "buffered",
			description: "A standard buffered channel with a one-element lookahead for Peek.",
			authors:     authors,
			features:    []string{"MPMC", "FIFO", "Bounded"},
			newQueue: func(capacity uint64) benchQueue {
				return buffered.New[*int](capacity)
			},
		},
	}
}

// filterImplementations keeps the implementations whose package name is in
// pkgNames. An empty filter keeps everything.
func filterImplementations(impls []Implementation[*int, benchQueue], pkgNames []string) []Implementation[*int, benchQueue] {
	if len(pkgNames) == 0 {
		return impls
	}
	var out []Implementation[*int, benchQueue]
	for _, impl := range impls {
		if slices.Contains(pkgNames, impl.pkgName) {
			out = append(out, impl)
		}
	}
	return out
}

func implementationMeta() map[string]report.Meta {
	out := make(map[string]report.Meta)
	for _, impl := range getImplementations() {
		out[impl.name] = impl.meta()
	}
	return out
}
