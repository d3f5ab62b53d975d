package picker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](m *Manager[T]) []T {
	var out []T
	for _, item := range m.All() {
		out = append(out, item)
	}
	return out
}

func TestNew_CopiesInput(t *testing.T) {
	items := []string{"a", "b", "c"}
	m := New(items)
	items[0] = "changed"

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur)
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, 3, m.Total())
	assert.Equal(t, 0, m.Position())
}

func TestSelectDown_WrapsAfterFullCycle(t *testing.T) {
	m := New([]int{10, 20, 30, 40})
	m.SelectDown()
	start := m.Position()
	for i := 0; i < m.Count(); i++ {
		m.SelectDown()
	}
	assert.Equal(t, start, m.Position())
}

func TestSelectUp_WrapsAfterFullCycle(t *testing.T) {
	m := New([]int{10, 20, 30})
	for i := 0; i < m.Count(); i++ {
		m.SelectUp()
	}
	assert.Equal(t, 0, m.Position())
}

func TestSelect_Wraparound(t *testing.T) {
	m := New([]string{"a", "b", "c"})

	m.SelectUp()
	assert.Equal(t, 2, m.Position())
	cur, _ := m.Current()
	assert.Equal(t, "c", cur)

	m.SelectDown()
	assert.Equal(t, 0, m.Position())
}

func TestSelect_EmptyIsNoop(t *testing.T) {
	m := New[string](nil)
	m.SelectDown()
	m.SelectUp()
	assert.Equal(t, 0, m.Position())

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Empty(t, collect(m))
}

func TestApplyFilter_PreservesOrderAndResets(t *testing.T) {
	m := New([]string{"food.txt", "bar.txt", "foobar", "xfoo"})
	m.SelectDown()
	m.SelectDown()

	m.ApplyFilter(func(s string) bool { return strings.Contains(s, "foo") })

	assert.Equal(t, []string{"food.txt", "foobar", "xfoo"}, collect(m))
	assert.Equal(t, 0, m.Position())
	assert.Equal(t, 4, m.Total())
}

func TestApplyFilter_RecomputesFromOrigin(t *testing.T) {
	m := New([]string{"alpha", "beta", "gamma"})

	m.ApplyFilter(func(s string) bool { return s == "alpha" })
	require.Equal(t, []string{"alpha"}, collect(m))

	// A second predicate sees the whole origin, not the previous result.
	m.ApplyFilter(func(s string) bool { return strings.HasSuffix(s, "a") })
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, collect(m))
}

func TestApplyFilter_Idempotent(t *testing.T) {
	m := New([]int{1, 2, 3, 4, 5, 6})
	even := func(n int) bool { return n%2 == 0 }

	m.ApplyFilter(even)
	first := collect(m)
	m.SelectDown()

	m.ApplyFilter(even)
	assert.Equal(t, first, collect(m))
	assert.Equal(t, 0, m.Position())
}

func TestApplyFilter_NoMatches(t *testing.T) {
	m := New([]int{1, 2, 3})
	m.SelectDown()
	m.ApplyFilter(func(int) bool { return false })

	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 0, m.Position())
	m.SelectDown()
	assert.Equal(t, 0, m.Position())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestApplyFilter_NilRestoresAll(t *testing.T) {
	m := New([]int{1, 2, 3})
	m.ApplyFilter(func(n int) bool { return n == 2 })
	m.ApplyFilter(nil)
	assert.Equal(t, []int{1, 2, 3}, collect(m))
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	m := New([]string{"a", "b", "c"})
	assert.Equal(t, collect(m), collect(m))

	var seen []int
	for i := range m.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}
