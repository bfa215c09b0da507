package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseStack(t *testing.T) {
	t.Run("initial values", func(t *testing.T) {
		c, _ := renderCounter(t)
		s := UseStack(c, []int{1, 2, 3})

		v, ok := s.Peek()
		require.True(t, ok)
		assert.Equal(t, 3, v)
		assert.False(t, s.IsEmpty())
	})

	t.Run("empty", func(t *testing.T) {
		c, _ := renderCounter(t)
		s := UseStack(c, []int{})

		_, ok := s.Peek()
		assert.False(t, ok)
		assert.True(t, s.IsEmpty())
	})

	t.Run("push and pop render once each", func(t *testing.T) {
		c, renders := renderCounter(t)
		s := UseStack(c, []int{1, 2})

		assert.Equal(t, 4, s.Push(3, 4))
		assert.Equal(t, 1, *renders)

		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, 4, v)
		v, _ = s.Pop()
		assert.Equal(t, 3, v)
		assert.Equal(t, 3, *renders)

		s.Peek()
		s.IsEmpty()
		s.Len()
		assert.Equal(t, 3, *renders)

		top, _ := s.Peek()
		assert.Equal(t, 2, top)
	})

	t.Run("pop on empty", func(t *testing.T) {
		c, renders := renderCounter(t)
		s := UseStack(c, []string{})

		v, ok := s.Pop()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 1, *renders)
	})

	t.Run("single item", func(t *testing.T) {
		c, _ := renderCounter(t)
		s := UseStack(c, []int{1})

		v, _ := s.Pop()
		assert.Equal(t, 1, v)
		assert.True(t, s.IsEmpty())
		_, ok := s.Peek()
		assert.False(t, ok)
	})

	t.Run("large", func(t *testing.T) {
		c, _ := renderCounter(t)
		initial := make([]int, 100)
		for i := range initial {
			initial[i] = i
		}
		s := UseStack(c, initial)

		for i := range 100 {
			v, ok := s.Pop()
			require.True(t, ok)
			require.Equal(t, 99-i, v)
		}
		assert.True(t, s.IsEmpty())
	})

	t.Run("initial slice is copied", func(t *testing.T) {
		c, _ := renderCounter(t)
		initial := []int{1, 2}
		s := UseStack(c, initial)

		s.Push(3)
		initial[1] = 99
		v, _ := s.Peek()
		assert.Equal(t, 3, v)
		s.Pop()
		v, _ = s.Peek()
		assert.Equal(t, 2, v)
	})
}
