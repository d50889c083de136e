package solver

import (
	"testing"

	"hypernim/game"

	"github.com/stretchr/testify/require"
)

func state(t *testing.T, vertices []game.Vertex, edges, faces [][]game.Vertex) *game.Hypergraph {
	t.Helper()
	h := game.NewHypergraph()
	for _, v := range vertices {
		h.AddVertex(v)
	}
	for _, e := range edges {
		require.NoError(t, h.AddEdge(e...))
	}
	for _, f := range faces {
		require.NoError(t, h.AddFace(f...))
	}
	return h
}

func TestGrundyKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		vertices []game.Vertex
		edges    [][]game.Vertex
		faces    [][]game.Vertex
		want     int
	}{
		{"empty hypergraph", nil, nil, nil, 0},
		{"single isolated vertex", []game.Vertex{"a"}, nil, nil, 1},
		{"two isolated vertices", []game.Vertex{"a", "b"}, nil, nil, 0},
		{"two vertices with an edge", []game.Vertex{"a", "b"}, [][]game.Vertex{{"a", "b"}}, nil, 0},
		{"three vertices with one face", []game.Vertex{"a", "b", "c"}, nil, [][]game.Vertex{{"a", "b", "c"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := NewEvaluator()
			got := eval.Grundy(state(t, tt.vertices, tt.edges, tt.faces))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGrundyMemoization(t *testing.T) {
	eval := NewEvaluator(WithMetrics())

	h1 := state(t, []game.Vertex{"a", "b"}, nil, nil)
	require.Equal(t, 0, eval.Grundy(h1))

	// Root, {a}, {b}, and the empty state are evaluated once each; the
	// empty state is reached twice, the second reach hits the cache.
	m := eval.Metrics()
	require.Equal(t, int64(4), m.Misses)
	require.Equal(t, int64(1), m.Hits)
	require.Equal(t, 4, eval.CacheSize())

	// The same structure built in a different insertion order is a cache
	// hit: canonical identity does not depend on insertion order.
	h2 := game.NewHypergraph()
	h2.AddVertex("b")
	h2.AddVertex("a")
	require.Equal(t, 0, eval.Grundy(h2))

	m = eval.Metrics()
	require.Equal(t, int64(4), m.Misses, "no new evaluations")
	require.Equal(t, int64(2), m.Hits)
}

func TestGrundyReset(t *testing.T) {
	eval := NewEvaluator()
	eval.Grundy(state(t, []game.Vertex{"a", "b"}, nil, nil))
	require.Equal(t, 4, eval.CacheSize())

	eval.Reset()
	require.Equal(t, 0, eval.CacheSize())

	// Still correct after a reset.
	require.Equal(t, 0, eval.Grundy(state(t, []game.Vertex{"a", "b"}, nil, nil)))
}

func TestGrundyDoesNotMutateArgument(t *testing.T) {
	h := state(t,
		[]game.Vertex{"a", "b", "c"},
		[][]game.Vertex{{"a", "b"}},
		[][]game.Vertex{{"a", "b", "c"}},
	)
	before := h.Key()

	NewEvaluator().Grundy(h)

	require.Equal(t, before, h.Key())
}

func TestGrundyStructureMatters(t *testing.T) {
	// Same vertex count, different structure: a face changes the cascade,
	// so the values legitimately differ.
	bare := state(t, []game.Vertex{"a", "b", "c"}, nil, nil)
	faced := state(t, []game.Vertex{"a", "b", "c"}, nil, [][]game.Vertex{{"a", "b", "c"}})

	eval := NewEvaluator()
	require.Equal(t, 1, eval.Grundy(bare))
	require.Equal(t, 1, eval.Grundy(faced))
	require.NotEqual(t, bare.Key(), faced.Key(), "distinct cache entries")
	// Three isolated vertices: successors are two-vertex states of value 0,
	// so mex{0} = 1. With the face the successors lose the face entirely,
	// also value 0 states. Equal values, distinct states.
}
