// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node = Node[string, string]

func drain(t *testing.T, f Frontier[string, string]) (states []string) {
	t.Helper()
	for !f.Empty() {
		n, err := f.Remove()
		require.NoError(t, err)
		states = append(states, n.State)
	}
	return states
}

func fill(f Frontier[string, string], states ...string) Frontier[string, string] {
	for _, s := range states {
		f.Add(node{State: s, Parent: NoParent})
	}
	return f
}

func TestQueue_FIFO(t *testing.T) {
	q := fill(NewQueue[string, string](), "n1", "n2", "n3")
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"n1", "n2", "n3"}, drain(t, q))
}

func TestStack_LIFO(t *testing.T) {
	s := fill(NewStack[string, string](), "n1", "n2", "n3")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"n3", "n2", "n1"}, drain(t, s))
}

func TestFrontier_Empty(t *testing.T) {
	for _, f := range []Frontier[string, string]{NewQueue[string, string](), NewStack[string, string]()} {
		assert.True(t, f.Empty())
		_, err := f.Remove()
		assert.ErrorIs(t, err, ErrEmptyFrontier)
		f.Add(node{State: "x"})
		assert.False(t, f.Empty())
		_, err = f.Remove()
		require.NoError(t, err)
		_, err = f.Remove()
		assert.ErrorIs(t, err, ErrEmptyFrontier, "%T", f)
	}
}

func TestFrontier_ContainsState(t *testing.T) {
	for _, f := range []Frontier[string, string]{NewQueue[string, string](), NewStack[string, string]()} {
		fill(f, "a", "b", "a")
		assert.True(t, f.ContainsState("a"))
		assert.True(t, f.ContainsState("b"))
		assert.False(t, f.ContainsState("c"))
		states := drain(t, f)
		assert.ElementsMatch(t, []string{"a", "a", "b"}, states, "duplicates are kept")
		assert.False(t, f.ContainsState("a"))
		assert.False(t, f.ContainsState("b"))
	}
}

func TestQueue_ContainsStateAfterPartialRemove(t *testing.T) {
	q := fill(NewQueue[string, string](), "a", "b", "a")
	n, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, "a", n.State)
	assert.True(t, q.ContainsState("a"), "second a is still queued")
	_, _ = q.Remove()
	_, _ = q.Remove()
	assert.False(t, q.ContainsState("a"))
	fill(q, "c")
	assert.Equal(t, []string{"c"}, drain(t, q), "queue is reusable after draining")
}

func TestQueue_InterleavedAddRemove(t *testing.T) {
	q := fill(NewQueue[string, string](), "1", "2")
	n, _ := q.Remove()
	assert.Equal(t, "1", n.State)
	fill(q, "3", "4")
	assert.Equal(t, []string{"2", "3", "4"}, drain(t, q))
}

func TestNodeFields(t *testing.T) {
	q := NewQueue[string, string]()
	q.Add(node{State: "b", Action: "m", Parent: 3, Depth: 2})
	n, err := q.Remove()
	require.NoError(t, err)
	assert.Equal(t, node{State: "b", Action: "m", Parent: 3, Depth: 2}, n)
}

func TestParseStrategy(t *testing.T) {
	for _, x := range []struct {
		in   string
		want Strategy
		err  bool
	}{
		{"bfs", BreadthFirst, false},
		{"dfs", DepthFirst, false},
		{"", BreadthFirst, false},
		{"astar", "", true},
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := ParseStrategy(x.in)
			if x.err {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, x.want, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Queue[string, string]{}, New[string, string](BreadthFirst))
	assert.IsType(t, &Stack[string, string]{}, New[string, string](DepthFirst))
}
