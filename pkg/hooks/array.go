package hooks

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned by Array.With for an index outside the array.
var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a dynamic array whose mutations re-render the owning component.
// Push, Pop, Reverse, Shift, Unshift, Sort, Splice, With and CopyWithin render;
// everything else is read-only.
type Array[T any] struct {
	c     *Component
	items []T
}

// UseArray returns the component's array for this slot, seeded with a copy of
// initial on first use.
func UseArray[T any](c *Component, initial []T) *Array[T] {
	return use(c, func() *Array[T] {
		return &Array[T]{c: c, items: slices.Clone(initial)}
	})
}

// Push appends values and returns the new length.
func (a *Array[T]) Push(values ...T) int {
	a.items = append(a.items, values...)
	a.c.notify("push")
	return len(a.items)
}

// Pop removes and returns the last element, or the zero value and false.
func (a *Array[T]) Pop() (T, bool) {
	defer a.c.notify("pop")

	var zero T
	n := len(a.items)
	if n == 0 {
		return zero, false
	}
	v := a.items[n-1]
	a.items[n-1] = zero
	a.items = a.items[:n-1]
	return v, true
}

// Shift removes and returns the first element, or the zero value and false.
func (a *Array[T]) Shift() (T, bool) {
	defer a.c.notify("shift")

	var zero T
	if len(a.items) == 0 {
		return zero, false
	}
	v := a.items[0]
	a.items = slices.Delete(a.items, 0, 1)
	return v, true
}

// Unshift inserts values at the front, keeping their order, and returns the new length.
func (a *Array[T]) Unshift(values ...T) int {
	a.items = slices.Insert(a.items, 0, values...)
	a.c.notify("unshift")
	return len(a.items)
}

// Reverse reverses the array in place.
func (a *Array[T]) Reverse() {
	slices.Reverse(a.items)
	a.c.notify("reverse")
}

// Sort sorts the array in place with a stable sort. A nil cmp orders elements
// by their default string form.
func (a *Array[T]) Sort(cmpFn func(x, y T) int) {
	if cmpFn == nil {
		cmpFn = func(x, y T) int {
			return cmp.Compare(fmt.Sprint(x), fmt.Sprint(y))
		}
	}
	slices.SortStableFunc(a.items, cmpFn)
	a.c.notify("sort")
}

// Splice removes deleteCount elements starting at start, inserts items in
// their place and returns the removed elements. A negative start counts from
// the end; both arguments are clamped to the array bounds.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) []T {
	defer a.c.notify("splice")

	n := len(a.items)
	start = relativeIndex(start, n)
	deleteCount = min(max(deleteCount, 0), n-start)

	removed := slices.Clone(a.items[start : start+deleteCount])
	a.items = slices.Replace(a.items, start, start+deleteCount, items...)
	return removed
}

// With returns a copy of the array with the element at index replaced.
// A negative index counts from the end. The array itself is left unchanged.
func (a *Array[T]) With(index int, value T) ([]T, error) {
	n := len(a.items)
	i := index
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("with(%d) on array of length %d: %w", index, n, ErrIndexOutOfRange)
	}

	out := slices.Clone(a.items)
	out[i] = value
	a.c.notify("with")
	return out, nil
}

// CopyWithin copies the elements in [start, end) to position target,
// overwriting what is there, without changing the length. Negative arguments
// count from the end and all of them are clamped to the array bounds.
func (a *Array[T]) CopyWithin(target, start, end int) {
	n := len(a.items)
	to := relativeIndex(target, n)
	from := relativeIndex(start, n)
	final := relativeIndex(end, n)

	if count := min(final-from, n-to); count > 0 {
		copy(a.items[to:to+count], a.items[from:from+count])
	}
	a.c.notify("copyWithin")
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// At returns the element at index; a negative index counts from the end.
func (a *Array[T]) At(index int) (T, bool) {
	if index < 0 {
		index += len(a.items)
	}
	if index < 0 || index >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[index], true
}

// Values returns a copy of the elements.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.items)
}

// IndexFunc returns the first index whose element satisfies f, or -1.
func (a *Array[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(a.items, f)
}

// ForEach calls fn for every element in order.
func (a *Array[T]) ForEach(fn func(i int, v T)) {
	for i, v := range a.items {
		fn(i, v)
	}
}

// relativeIndex resolves a possibly negative index against length n and
// clamps it to [0, n].
func relativeIndex(i, n int) int {
	if i < 0 {
		return max(n+i, 0)
	}
	return min(i, n)
}
