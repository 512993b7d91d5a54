package xordmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Keys(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, New[string]().Keys())
	})

	t.Run("insertion order", func(t *testing.T) {
		m := addAll(New[string](), "c", "a", "b")
		assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	})

	t.Run("repeated calls yield the same sequence", func(t *testing.T) {
		m := addAll(New[string](), "a", "b", "c")
		assert.Equal(t, m.Keys(), m.Keys())
	})

	t.Run("touch moves the key to the end", func(t *testing.T) {
		m := addAll(New[string](), "a", "b", "c").Add("a")
		assert.Equal(t, []string{"b", "c", "a"}, m.Keys())
	})
}

func TestMap_All(t *testing.T) {
	m := addAll(New[int](), 3, 1, 2)

	t.Run("full traversal", func(t *testing.T) {
		assert.Equal(t, []int{3, 1, 2}, slices.Collect(m.All()))
	})

	t.Run("early break", func(t *testing.T) {
		var got []int
		for v := range m.All() {
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []int{3, 1}, got)
	})

	t.Run("empty map yields nothing", func(t *testing.T) {
		for range New[int]().All() {
			t.Fatal("empty map must not yield")
		}
	})
}

func TestMap_Backward(t *testing.T) {
	m := addAll(New[int](), 3, 1, 2)
	assert.Equal(t, []int{2, 1, 3}, slices.Collect(m.Backward()))
}

func TestMap_HeadTail(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		m := New[string]()
		_, ok := m.Head()
		assert.False(t, ok)
		_, ok = m.Tail()
		assert.False(t, ok)
	})

	t.Run("non-empty", func(t *testing.T) {
		m := addAll(New[string](), "a", "b", "c")
		h, ok := m.Head()
		require.True(t, ok)
		assert.Equal(t, "a", h)
		tl, ok := m.Tail()
		require.True(t, ok)
		assert.Equal(t, "c", tl)
	})
}

func TestMap_NextPrev(t *testing.T) {
	m := addAll(New[string](), "a", "b", "c")

	t.Run("interior neighbors", func(t *testing.T) {
		next, ok := m.Next("b")
		require.True(t, ok)
		assert.Equal(t, "c", next)
		prev, ok := m.Prev("b")
		require.True(t, ok)
		assert.Equal(t, "a", prev)
	})

	t.Run("boundaries", func(t *testing.T) {
		_, ok := m.Prev("a")
		assert.False(t, ok, "head has no prev")
		_, ok = m.Next("c")
		assert.False(t, ok, "tail has no next")
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := m.Next("zzz")
		assert.False(t, ok)
		_, ok = m.Prev("zzz")
		assert.False(t, ok)
	})
}

func TestMap_Equal(t *testing.T) {
	t.Run("same build sequence", func(t *testing.T) {
		a := addAll(New[string](), "x", "y")
		b := addAll(New[string](), "x", "y")
		assert.True(t, a.Equal(b))
	})

	t.Run("same keys different order", func(t *testing.T) {
		a := addAll(New[string](), "x", "y")
		b := addAll(New[string](), "y", "x")
		assert.False(t, a.Equal(b))
	})

	t.Run("empty equals zero value", func(t *testing.T) {
		var zero Map[string]
		assert.True(t, New[string]().Equal(zero))
	})

	t.Run("subset is not equal", func(t *testing.T) {
		a := addAll(New[string](), "x", "y")
		assert.False(t, a.Equal(a.Remove("y")))
	})
}

func TestFold(t *testing.T) {
	m := addAll(New[int](), 1, 2, 3, 4)

	t.Run("sum", func(t *testing.T) {
		sum := Fold(m, 0, func(acc, v int) int { return acc + v })
		assert.Equal(t, 10, sum)
	})

	t.Run("order-sensitive accumulation", func(t *testing.T) {
		got := Fold(m, []int(nil), func(acc []int, v int) []int { return append(acc, v) })
		assert.Equal(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("count via fold matches Len", func(t *testing.T) {
		count := Fold(m, 0, func(acc, _ int) int { return acc + 1 })
		assert.Equal(t, m.Len(), count)
	})

	t.Run("empty map returns init", func(t *testing.T) {
		assert.Equal(t, 42, Fold(New[int](), 42, func(acc, _ int) int { return acc + 1 }))
	})
}

func TestMap_String(t *testing.T) {
	assert.Equal(t, "xordmap[]", New[string]().String())
	assert.Equal(t, "xordmap[a b c]", addAll(New[string](), "a", "b", "c").String())
	assert.Equal(t, "xordmap[1 2]", addAll(New[int](), 1, 2).String())
}
