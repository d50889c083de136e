package game

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Vertex is an opaque identifier for a node in the hypergraph.
type Vertex string

// StateHash is the canonical 64-bit hash of a hypergraph state.
type StateHash uint64

// Hypergraph represents a take-away game position: a set of vertices, a set
// of two-vertex edges, and a set of faces (hyperedges of three or more
// vertices). Edges and faces are stored keyed by their canonical sorted
// member list, so equality and hashing never depend on insertion order.
//
// Every edge and face member is guaranteed to be present in the vertex set:
// insertion validates membership and removal cascades, so no dangling
// reference can exist after any mutation.
type Hypergraph struct {
	vertices map[Vertex]struct{}
	edges    map[string][]Vertex
	faces    map[string][]Vertex
}

// NewHypergraph returns an empty hypergraph.
func NewHypergraph() *Hypergraph {
	return &Hypergraph{
		vertices: make(map[Vertex]struct{}),
		edges:    make(map[string][]Vertex),
		faces:    make(map[string][]Vertex),
	}
}

// AddVertex inserts v into the vertex set. Inserting an existing vertex is a
// no-op.
func (h *Hypergraph) AddVertex(v Vertex) {
	h.vertices[v] = struct{}{}
}

// AddEdge inserts an edge connecting exactly two distinct vertices. Both
// vertices must already be in the vertex set.
func (h *Hypergraph) AddEdge(members ...Vertex) error {
	m := normalize(members)
	if len(m) != 2 {
		return &ValidationError{
			Op:     "add edge",
			Reason: fmt.Sprintf("edge must connect exactly two distinct vertices, got %d", len(m)),
		}
	}
	if err := h.checkMembers("add edge", m); err != nil {
		return err
	}
	h.edges[memberKey(m)] = m
	return nil
}

// AddFace inserts a face connecting three or more distinct vertices, all of
// which must already be in the vertex set.
func (h *Hypergraph) AddFace(members ...Vertex) error {
	m := normalize(members)
	if len(m) < 3 {
		return &ValidationError{
			Op:     "add face",
			Reason: fmt.Sprintf("face must connect at least three distinct vertices, got %d", len(m)),
		}
	}
	if err := h.checkMembers("add face", m); err != nil {
		return err
	}
	h.faces[memberKey(m)] = m
	return nil
}

func (h *Hypergraph) checkMembers(op string, members []Vertex) error {
	for _, v := range members {
		if !h.HasVertex(v) {
			return &ValidationError{
				Op:     op,
				Reason: fmt.Sprintf("vertex %q not in hypergraph", v),
			}
		}
	}
	return nil
}

// RemoveVertex deletes v and cascades to every edge and face containing it.
// Removing an absent vertex is a no-op.
func (h *Hypergraph) RemoveVertex(v Vertex) {
	delete(h.vertices, v)
	for key, members := range h.edges {
		if containsVertex(members, v) {
			delete(h.edges, key)
		}
	}
	for key, members := range h.faces {
		if containsVertex(members, v) {
			delete(h.faces, key)
		}
	}
}

// RemoveEdge deletes the exact edge with the given members, if present.
func (h *Hypergraph) RemoveEdge(members ...Vertex) {
	delete(h.edges, memberKey(normalize(members)))
}

// RemoveFace deletes the exact face with the given members, if present.
func (h *Hypergraph) RemoveFace(members ...Vertex) {
	delete(h.faces, memberKey(normalize(members)))
}

// RemoveHyperedge deletes every face that is a superset of the given member
// set, and additionally the exact edge when given two vertices. A single
// call retracts a two-vertex connection together with all larger faces that
// depend on it.
func (h *Hypergraph) RemoveHyperedge(members ...Vertex) {
	m := normalize(members)
	for key, face := range h.faces {
		if isSubset(m, face) {
			delete(h.faces, key)
		}
	}
	if len(m) == 2 {
		delete(h.edges, memberKey(m))
	}
}

// IsEmpty reports whether the vertex set is empty.
func (h *Hypergraph) IsEmpty() bool {
	return len(h.vertices) == 0
}

// HasVertex reports whether v is in the vertex set.
func (h *Hypergraph) HasVertex(v Vertex) bool {
	_, ok := h.vertices[v]
	return ok
}

// NumVertices returns the size of the vertex set.
func (h *Hypergraph) NumVertices() int {
	return len(h.vertices)
}

// Vertices returns the vertex set in sorted order.
func (h *Hypergraph) Vertices() []Vertex {
	vs := make([]Vertex, 0, len(h.vertices))
	for v := range h.vertices {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Edges returns the edge set as sorted member lists, ordered canonically.
func (h *Hypergraph) Edges() [][]Vertex {
	return sortedMembers(h.edges)
}

// Faces returns the face set as sorted member lists, ordered canonically.
func (h *Hypergraph) Faces() [][]Vertex {
	return sortedMembers(h.faces)
}

// Copy returns an independent value copy: no container is shared between
// the original and the copy.
func (h *Hypergraph) Copy() *Hypergraph {
	c := NewHypergraph()
	for v := range h.vertices {
		c.vertices[v] = struct{}{}
	}
	for key, members := range h.edges {
		c.edges[key] = append([]Vertex(nil), members...)
	}
	for key, members := range h.faces {
		c.faces[key] = append([]Vertex(nil), members...)
	}
	return c
}

// Key returns the canonical structural identity of the state: a sorted
// render of the three member sets. Two states have equal keys iff their
// vertex, edge, and face sets are equal as sets, independent of insertion
// order. The key is exact (collision-free) and is what the solver uses for
// cache and visited-set lookups.
func (h *Hypergraph) Key() string {
	var b strings.Builder
	b.WriteString("V:")
	for i, v := range h.Vertices() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(v))
	}
	b.WriteString("|E:")
	writeSortedKeys(&b, h.edges)
	b.WriteString("|F:")
	writeSortedKeys(&b, h.faces)
	return b.String()
}

// Hash returns the fnv64a hash of the canonical key.
func (h *Hypergraph) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(h.Key()))
	return StateHash(hasher.Sum64())
}

// Equal reports structural equality of the two states.
func (h *Hypergraph) Equal(other *Hypergraph) bool {
	return h.Key() == other.Key()
}

// String renders the state as "V: <vertices> | E: <edges> | F: <faces>"
// with every member set sorted. The render is part of the observable
// contract: game tree nodes and external callers use it as a display label.
func (h *Hypergraph) String() string {
	return fmt.Sprintf("V: %v | E: %v | F: %v", h.Vertices(), h.Edges(), h.Faces())
}

// Components partitions the state into maximal connected sub-states, where
// two vertices are connected if they co-occur in any edge or face. The
// returned components' vertex sets partition the original vertex set
// exactly, and each component carries only the edges and faces fully
// contained in its own vertex subset.
func (h *Hypergraph) Components() []*Hypergraph {
	// Adjacency from co-occurrence in edges and faces.
	adjacency := make(map[Vertex]map[Vertex]struct{})
	addPairs := func(members []Vertex) {
		for _, a := range members {
			for _, b := range members {
				if a == b {
					continue
				}
				if adjacency[a] == nil {
					adjacency[a] = make(map[Vertex]struct{})
				}
				adjacency[a][b] = struct{}{}
			}
		}
	}
	for _, members := range h.edges {
		addPairs(members)
	}
	for _, members := range h.faces {
		addPairs(members)
	}

	visited := make(map[Vertex]bool)
	var components []*Hypergraph

	// Just BFS, seeded in sorted order for a deterministic result.
	for _, start := range h.Vertices() {
		if visited[start] {
			continue
		}
		group := make(map[Vertex]struct{})
		queue := []Vertex{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if visited[current] {
				continue
			}
			visited[current] = true
			group[current] = struct{}{}
			for neighbor := range adjacency[current] {
				if !visited[neighbor] {
					queue = append(queue, neighbor)
				}
			}
		}
		components = append(components, h.subgraph(group))
	}
	return components
}

// subgraph copies the vertices in group plus every edge and face fully
// contained in it.
func (h *Hypergraph) subgraph(group map[Vertex]struct{}) *Hypergraph {
	sub := NewHypergraph()
	for v := range group {
		sub.vertices[v] = struct{}{}
	}
	inGroup := func(members []Vertex) bool {
		for _, v := range members {
			if _, ok := group[v]; !ok {
				return false
			}
		}
		return true
	}
	for key, members := range h.edges {
		if inGroup(members) {
			sub.edges[key] = append([]Vertex(nil), members...)
		}
	}
	for key, members := range h.faces {
		if inGroup(members) {
			sub.faces[key] = append([]Vertex(nil), members...)
		}
	}
	return sub
}

// normalize returns a sorted, deduplicated copy of members.
func normalize(members []Vertex) []Vertex {
	seen := make(map[Vertex]struct{}, len(members))
	m := make([]Vertex, 0, len(members))
	for _, v := range members {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		m = append(m, v)
	}
	sort.Slice(m, func(i, j int) bool { return m[i] < m[j] })
	return m
}

// memberKey builds the canonical map key for a normalized member list.
func memberKey(members []Vertex) string {
	parts := make([]string, len(members))
	for i, v := range members {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

func writeSortedKeys(b *strings.Builder, set map[string][]Vertex) {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(key)
	}
}

func sortedMembers(set map[string][]Vertex) [][]Vertex {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([][]Vertex, 0, len(keys))
	for _, key := range keys {
		out = append(out, append([]Vertex(nil), set[key]...))
	}
	return out
}

func containsVertex(members []Vertex, v Vertex) bool {
	for _, m := range members {
		if m == v {
			return true
		}
	}
	return false
}

// isSubset reports whether every vertex of sub appears in members.
func isSubset(sub, members []Vertex) bool {
	for _, v := range sub {
		if !containsVertex(members, v) {
			return false
		}
	}
	return true
}
