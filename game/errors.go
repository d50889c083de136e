package game

import "fmt"

// ValidationError reports a rejected insertion: malformed edge or face
// arity, or a member vertex missing from the vertex set. Removal operations
// never produce one; removing absent members is always a permissive no-op.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InvalidMoveError reports a vertex move that referenced a vertex not in the
// live state. It is recoverable: the caller may retry with a valid vertex.
type InvalidMoveError struct {
	Vertex Vertex
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("vertex %q not found in hypergraph", e.Vertex)
}
