package hooks

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Entry is one key/value pair of a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered key/value map whose Set, Delete and Clear
// re-render the owning component. Keys compare like ==, except that NaN
// equals NaN.
type Map[K comparable, V any] struct {
	c       *Component
	entries *orderedmap.OrderedMap[key[K], Entry[K, V]]
}

// UseMap returns the component's map for this slot, seeded from initial on
// first use. Later duplicates of a key overwrite the value but keep the
// position of the first occurrence.
func UseMap[K comparable, V any](c *Component, initial []Entry[K, V]) *Map[K, V] {
	return use(c, func() *Map[K, V] {
		m := &Map[K, V]{
			c:       c,
			entries: orderedmap.New[key[K], Entry[K, V]](orderedmap.WithCapacity[key[K], Entry[K, V]](len(initial))),
		}
		for _, e := range initial {
			m.put(e.Key, e.Value)
		}
		return m
	})
}

func (m *Map[K, V]) put(k K, value V) {
	m.entries.Set(keyOf(k), Entry[K, V]{Key: k, Value: value})
}

// Set stores value under k. An existing key keeps its position.
func (m *Map[K, V]) Set(k K, value V) {
	m.put(k, value)
	m.c.notify("set")
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	_, ok := m.entries.Delete(keyOf(k))
	m.c.notify("delete")
	return ok
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.entries = orderedmap.New[key[K], Entry[K, V]]()
	m.c.notify("clear")
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e, ok := m.entries.Get(keyOf(k))
	return e.Value, ok
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.entries.Get(keyOf(k))
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.entries.Len())
	m.ForEach(func(k K, _ V) {
		out = append(out, k)
	})
	return out
}

// Values returns the values in key insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.entries.Len())
	m.ForEach(func(_ K, v V) {
		out = append(out, v)
	})
	return out
}

// Entries returns the key/value pairs in insertion order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// ForEach calls fn for every entry in insertion order.
func (m *Map[K, V]) ForEach(fn func(k K, v V)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value.Key, pair.Value.Value)
	}
}
