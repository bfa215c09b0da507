package hooks

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Set is an insertion-ordered set of unique values whose Add, Delete and
// Clear re-render the owning component. Members compare like ==, except that
// NaN equals NaN, so a set holds at most one NaN.
type Set[T comparable] struct {
	c       *Component
	members *orderedmap.OrderedMap[key[T], T]
}

// UseSet returns the component's set for this slot, seeded from initial on
// first use. Duplicates in initial are kept once.
func UseSet[T comparable](c *Component, initial []T) *Set[T] {
	return use(c, func() *Set[T] {
		s := &Set[T]{
			c:       c,
			members: orderedmap.New[key[T], T](orderedmap.WithCapacity[key[T], T](len(initial))),
		}
		for _, v := range initial {
			s.insert(v)
		}
		return s
	})
}

func (s *Set[T]) insert(v T) {
	k := keyOf(v)
	if _, ok := s.members.Get(k); !ok {
		s.members.Set(k, v)
	}
}

// Add inserts v. Adding a present value changes nothing but still renders.
func (s *Set[T]) Add(v T) {
	s.insert(v)
	s.c.notify("add")
}

// Delete removes v and reports whether it was present.
func (s *Set[T]) Delete(v T) bool {
	_, ok := s.members.Delete(keyOf(v))
	s.c.notify("delete")
	return ok
}

// Clear removes every value.
func (s *Set[T]) Clear() {
	s.members = orderedmap.New[key[T], T]()
	s.c.notify("clear")
}

// Has reports whether v is a member.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.members.Get(keyOf(v))
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.members.Len()
}

// Values returns the members in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.members.Len())
	s.ForEach(func(v T) {
		out = append(out, v)
	})
	return out
}

// ForEach calls fn for every member in insertion order.
func (s *Set[T]) ForEach(fn func(v T)) {
	for pair := s.members.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value)
	}
}
