package hooks

// Stack is a LIFO stack backed by an Array. Push and Pop re-render the owning
// component through the array.
type Stack[T any] struct {
	arr *Array[T]
}

// UseStack returns the component's stack for this slot. The last element of
// initial is the top of the stack.
func UseStack[T any](c *Component, initial []T) *Stack[T] {
	return use(c, func() *Stack[T] {
		return &Stack[T]{arr: &Array[T]{c: c, items: append([]T(nil), initial...)}}
	})
}

// Push places values on top, the last one ending up on top, and returns the new size.
func (s *Stack[T]) Push(values ...T) int {
	return s.arr.Push(values...)
}

// Pop removes and returns the top value, or the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	return s.arr.Pop()
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	return s.arr.At(-1)
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.arr.Len() == 0
}

// Len returns how many values are on the stack.
func (s *Stack[T]) Len() int {
	return s.arr.Len()
}
