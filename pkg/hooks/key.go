package hooks

import "math"

// key is how Map and Set index a value. Go maps never find a NaN key again,
// so every NaN collapses onto one key and is treated as equal to itself.
// Only float32 and float64 are recognised; named float types are compared
// with ==.
type key[T comparable] struct {
	v   T
	nan bool
}

func keyOf[T comparable](v T) key[T] {
	switch x := any(v).(type) {
	case float64:
		if math.IsNaN(x) {
			return key[T]{nan: true}
		}
	case float32:
		if math.IsNaN(float64(x)) {
			return key[T]{nan: true}
		}
	}
	return key[T]{v: v}
}
