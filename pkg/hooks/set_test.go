package hooks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseSetInitialValues(t *testing.T) {
	c, renders := renderCounter(t)
	s := UseSet(c, []int{1, 2, 2, 3})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.True(t, s.Has(2))
	assert.Zero(t, *renders)
}

func TestUseSetEmpty(t *testing.T) {
	c, _ := renderCounter(t)
	s := UseSet[string](c, nil)

	assert.Zero(t, s.Len())
	assert.False(t, s.Has(""))
}

func TestSetMutationsRender(t *testing.T) {
	c, renders := renderCounter(t)
	s := UseSet(c, []string{"a"})

	s.Add("b")
	assert.Equal(t, 1, *renders)

	assert.True(t, s.Delete("a"))
	assert.Equal(t, 2, *renders)

	s.Clear()
	assert.Equal(t, 3, *renders)
	assert.Zero(t, s.Len())
}

func TestSetDuplicateAndMissing(t *testing.T) {
	c, renders := renderCounter(t)
	s := UseSet(c, []int{1})

	s.Add(1)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, *renders, "duplicate add still renders")

	assert.False(t, s.Delete(42))
	assert.Equal(t, 2, *renders)
}

func TestSetReadsDoNotRender(t *testing.T) {
	c, renders := renderCounter(t)
	s := UseSet(c, []int{1, 2})

	s.Has(1)
	s.Len()
	s.Values()
	s.ForEach(func(int) {})

	assert.Zero(t, *renders)
}

func TestSetInsertionOrder(t *testing.T) {
	c, _ := renderCounter(t)
	s := UseSet(c, []string{"c", "a"})
	s.Add("b")
	s.Delete("c")
	s.Add("c")

	var got []string
	s.ForEach(func(v string) { got = append(got, v) })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSetComparableStructs(t *testing.T) {
	type point struct{ X, Y int }
	c, _ := renderCounter(t)
	s := UseSet(c, []point{{1, 2}})

	s.Add(point{1, 2})
	s.Add(point{3, 4})
	assert.Equal(t, []point{{1, 2}, {3, 4}}, s.Values())
}

func TestSetHoldsOneNaN(t *testing.T) {
	c, renders := renderCounter(t)
	s := UseSet(c, []float64{math.NaN(), 1, math.NaN()})
	require.Equal(t, 2, s.Len())

	s.Add(math.NaN())
	s.Add(math.NaN())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, *renders)
	assert.True(t, s.Has(math.NaN()))

	vals := s.Values()
	require.Len(t, vals, 2)
	assert.True(t, math.IsNaN(vals[0]))
	assert.Equal(t, 1.0, vals[1])

	assert.True(t, s.Delete(math.NaN()))
	assert.False(t, s.Has(math.NaN()))
	assert.Equal(t, []float64{1}, s.Values())
}

func TestSetNaNFloat32(t *testing.T) {
	c, _ := renderCounter(t)
	nan := float32(math.NaN())
	s := UseSet(c, []float32{nan, nan})

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(nan))
}

func TestSetDeleteFromMiddleOfLargeSet(t *testing.T) {
	const n = 10000
	c, _ := renderCounter(t)
	initial := make([]int, n)
	for i := range initial {
		initial[i] = i
	}
	s := UseSet(c, initial)

	for i := 1; i < n; i += 2 {
		require.True(t, s.Delete(i))
	}
	require.Equal(t, n/2, s.Len())
	for i, v := range s.Values() {
		if v != 2*i {
			t.Fatalf("member %d out of order: got %d", i, v)
		}
	}
}
