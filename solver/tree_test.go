package solver

import (
	"sort"
	"testing"

	"hypernim/game"

	"github.com/stretchr/testify/require"
)

func TestBuildTreeEmptyState(t *testing.T) {
	builder := NewTreeBuilder(NewEvaluator())
	root := builder.Build(game.NewHypergraph(), Unbounded)

	require.Equal(t, "V: [] | E: [] | F: []", root.State)
	require.Equal(t, 0, root.Grundy)
	require.Empty(t, root.Children)
	require.False(t, root.Truncated)
	require.False(t, root.CycleDetected)
}

func TestBuildTreeSingleVertex(t *testing.T) {
	h := state(t, []game.Vertex{"a"}, nil, nil)
	root := NewTreeBuilder(NewEvaluator()).Build(h, Unbounded)

	require.Equal(t, 1, root.Grundy)
	require.Len(t, root.Children, 1)

	child := root.Children[0]
	require.Equal(t, "V: [] | E: [] | F: []", child.State)
	require.Equal(t, 0, child.Grundy)
	require.Empty(t, child.Children)
}

func TestBuildTreeTwoIsolatedVertices(t *testing.T) {
	h := state(t, []game.Vertex{"a", "b"}, nil, nil)
	root := NewTreeBuilder(NewEvaluator()).Build(h, Unbounded)

	require.Equal(t, 0, root.Grundy)
	require.Len(t, root.Children, 2)

	// Child order is the vertex iteration order; normalize before asserting.
	states := []string{root.Children[0].State, root.Children[1].State}
	sort.Strings(states)
	require.Equal(t, []string{
		"V: [a] | E: [] | F: []",
		"V: [b] | E: [] | F: []",
	}, states)

	for _, child := range root.Children {
		require.Equal(t, 1, child.Grundy)
		require.Len(t, child.Children, 1)
		require.Equal(t, "V: [] | E: [] | F: []", child.Children[0].State)
	}
}

func TestBuildTreeDepthZero(t *testing.T) {
	h := state(t, []game.Vertex{"a", "b"}, [][]game.Vertex{{"a", "b"}}, nil)
	root := NewTreeBuilder(NewEvaluator()).Build(h, 0)

	require.True(t, root.Truncated)
	require.Empty(t, root.Children)
	require.Equal(t, 0, root.Grundy, "grundy is still computed on truncated leaves")
}

func TestBuildTreeDepthOne(t *testing.T) {
	h := state(t, []game.Vertex{"a", "b"}, nil, nil)
	root := NewTreeBuilder(NewEvaluator()).Build(h, 1)

	require.False(t, root.Truncated)
	require.Len(t, root.Children, 2)
	for _, child := range root.Children {
		require.True(t, child.Truncated)
		require.Empty(t, child.Children)
		require.Equal(t, 1, child.Grundy)
	}
}

func TestBuildTreeDoesNotMutateArgument(t *testing.T) {
	h := state(t,
		[]game.Vertex{"a", "b", "c"},
		[][]game.Vertex{{"a", "b"}},
		[][]game.Vertex{{"a", "b", "c"}},
	)
	before := h.Key()

	NewTreeBuilder(NewEvaluator()).Build(h, Unbounded)

	require.Equal(t, before, h.Key())
}

func TestBuildTreeNilEvaluator(t *testing.T) {
	builder := NewTreeBuilder(nil)
	root := builder.Build(state(t, []game.Vertex{"a"}, nil, nil), Unbounded)
	require.Equal(t, 1, root.Grundy)
}
