// Command hooksdemo drives every container hook through a short scripted
// interaction and prints the view after each re-render.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/i5heu/GoStateHooks/pkg/hooks"
)

// example is a view plus the user actions applied to it in order.
type example struct {
	name    string
	view    func(c *hooks.Component) string
	actions []action
}

type action struct {
	label string
	do    func(c *hooks.Component)
}

var queueInit = []string{"First", "Second", "Third"}

func queueView(c *hooks.Component) string {
	q := hooks.UseQueue(c, queueInit)
	if front, ok := q.Peek(); ok {
		return fmt.Sprintf("front=%q len=%d", front, q.Len())
	}
	return "(empty queue)"
}

var stackInit = []string{"Bottom", "Middle", "Top"}

func stackView(c *hooks.Component) string {
	s := hooks.UseStack(c, stackInit)
	if top, ok := s.Peek(); ok {
		return fmt.Sprintf("top=%q len=%d", top, s.Len())
	}
	return "(empty stack)"
}

var arrayInit = []int{3, 1, 2}

func arrayView(c *hooks.Component) string {
	return fmt.Sprint(hooks.UseArray(c, arrayInit).Values())
}

var mapInit = []hooks.Entry[string, string]{{Key: "name", Value: "Ada"}, {Key: "age", Value: "36"}, {Key: "city", Value: "London"}}

func mapView(c *hooks.Component) string {
	var parts []string
	hooks.UseMap(c, mapInit).ForEach(func(k, v string) {
		parts = append(parts, k+"="+v)
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

var setInit = []string{"go", "queues"}

func setView(c *hooks.Component) string {
	return fmt.Sprint(hooks.UseSet(c, setInit).Values())
}

// rerun re-enters a view's hooks so an action can reach the same containers
// the view rendered from.
func rerun(c *hooks.Component) *hooks.Component {
	c.Begin()
	return c
}

func examples() []example {
	return []example{
		{
			name: "queue",
			view: queueView,
			actions: []action{
				{"enqueue", func(c *hooks.Component) { hooks.UseQueue(rerun(c), queueInit).Enqueue("Fourth") }},
				{"dequeue", func(c *hooks.Component) { hooks.UseQueue(rerun(c), queueInit).Dequeue() }},
				{"drain", func(c *hooks.Component) {
					q := hooks.UseQueue(rerun(c), queueInit)
					for !q.IsEmpty() {
						q.Dequeue()
					}
				}},
				{"dequeue empty", func(c *hooks.Component) { hooks.UseQueue(rerun(c), queueInit).Dequeue() }},
			},
		},
		{
			name: "stack",
			view: stackView,
			actions: []action{
				{"push", func(c *hooks.Component) { hooks.UseStack(rerun(c), stackInit).Push("New Top") }},
				{"pop", func(c *hooks.Component) { hooks.UseStack(rerun(c), stackInit).Pop() }},
				{"pop", func(c *hooks.Component) { hooks.UseStack(rerun(c), stackInit).Pop() }},
			},
		},
		{
			name: "array",
			view: arrayView,
			actions: []action{
				{"push", func(c *hooks.Component) { hooks.UseArray(rerun(c), arrayInit).Push(4) }},
				{"sort", func(c *hooks.Component) { hooks.UseArray(rerun(c), arrayInit).Sort(cmp.Compare[int]) }},
				{"reverse", func(c *hooks.Component) { hooks.UseArray(rerun(c), arrayInit).Reverse() }},
				{"shift", func(c *hooks.Component) { hooks.UseArray(rerun(c), arrayInit).Shift() }},
				{"splice", func(c *hooks.Component) { hooks.UseArray(rerun(c), arrayInit).Splice(1, 1, 10, 20) }},
			},
		},
		{
			name: "map",
			view: mapView,
			actions: []action{
				{"set", func(c *hooks.Component) { hooks.UseMap(rerun(c), mapInit).Set("lang", "Go") }},
				{"delete", func(c *hooks.Component) { hooks.UseMap(rerun(c), mapInit).Delete("age") }},
				{"clear", func(c *hooks.Component) { hooks.UseMap(rerun(c), mapInit).Clear() }},
			},
		},
		{
			name: "set",
			view: setView,
			actions: []action{
				{"add", func(c *hooks.Component) { hooks.UseSet(rerun(c), setInit).Add("hooks") }},
				{"add duplicate", func(c *hooks.Component) { hooks.UseSet(rerun(c), setInit).Add("go") }},
				{"delete", func(c *hooks.Component) { hooks.UseSet(rerun(c), setInit).Delete("queues") }},
			},
		},
	}
}

// run plays every selected example and logs one line per rendered frame.
func run(logger hclog.Logger, only string) error {
	played := 0
	for _, ex := range examples() {
		if only != "" && ex.name != only {
			continue
		}
		played++

		exLog := logger.Named(ex.name)
		var c *hooks.Component
		frame := func() {
			c.Begin()
			exLog.Info("render", "version", c.Version(), "view", ex.view(c))
		}
		c = hooks.NewComponent(hooks.WithRender(frame), hooks.WithLogger(exLog))

		frame()
		for _, a := range ex.actions {
			exLog.Debug("action", "name", a.label)
			a.do(c)
		}
		c.Dispose()
	}
	if played == 0 {
		return fmt.Errorf("unknown example %q", only)
	}
	return nil
}

func newLogger(w io.Writer, level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hooksdemo",
		Level:  hclog.LevelFromString(level),
		Output: w,
	})
}

func main() {
	only := flag.String("example", "", "Run only this example (queue, stack, array, map, set)")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	logger := newLogger(os.Stderr, *logLevel)
	if err := run(logger, *only); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}
