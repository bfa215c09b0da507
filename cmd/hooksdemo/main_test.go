package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ": render:") {
			n++
		}
	}
	return n
}

func TestQueueExample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(newLogger(&buf, "info"), "queue"))

	out := buf.String()
	// Initial frame, enqueue, dequeue, three dequeues to drain, and the empty dequeue.
	assert.Equal(t, 7, renderLines(out))
	assert.Contains(t, out, "Fourth")
	assert.Contains(t, out, "(empty queue)")
}

func TestAllExamplesRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(newLogger(&buf, "debug"), ""))

	out := buf.String()
	for _, name := range []string{"queue", "stack", "array", "map", "set"} {
		assert.Contains(t, out, "hooksdemo."+name)
	}
	assert.Contains(t, out, "New Top")
	assert.Contains(t, out, "lang=Go")
	assert.Contains(t, out, "[3 10 20 1]")
	assert.Contains(t, out, "action")
}

func TestUnknownExample(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(newLogger(&buf, "info"), "tree"))
}

func TestViewsAreStableAcrossFrames(t *testing.T) {
	for _, ex := range examples() {
		t.Run(ex.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, run(newLogger(&buf, "info"), ex.name))
			assert.Equal(t, 1+len(ex.actions), renderLines(buf.String())-extraRenders(ex.name))
		})
	}
}

// extraRenders counts frames caused by actions that mutate more than once.
func extraRenders(name string) int {
	if name == "queue" {
		return 2 // drain dequeues three times
	}
	return 0
}
