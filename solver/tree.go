package solver

import "hypernim/game"

// Unbounded disables the depth limit when building a game tree.
const Unbounded = -1

// TreeNode is one node of an explored game tree: the display render of its
// state, the state's Grundy number, and the successors explored beneath it.
// Nodes are transient, created during one Build call and never shared.
type TreeNode struct {
	State         string
	Grundy        int
	Children      []*TreeNode
	Truncated     bool // depth limit reached, successors not explored
	CycleDetected bool // state already on the current recursion path
}

// TreeBuilder explores the successor space of a position, bounded by depth
// and guarded against cycles, annotating each node with its Grundy number.
type TreeBuilder struct {
	eval *Evaluator
}

func NewTreeBuilder(eval *Evaluator) *TreeBuilder {
	if eval == nil {
		eval = NewEvaluator()
	}
	return &TreeBuilder{eval: eval}
}

// Build explores the game tree rooted at state down to maxDepth levels
// (Unbounded for no limit). The argument is never mutated; every successor
// is built on an independent copy.
func (b *TreeBuilder) Build(state *game.Hypergraph, maxDepth int) *TreeNode {
	return b.build(state, maxDepth, 0, make(map[string]struct{}))
}

func (b *TreeBuilder) build(state *game.Hypergraph, maxDepth, depth int, visited map[string]struct{}) *TreeNode {
	node := &TreeNode{
		State:  state.String(),
		Grundy: b.eval.Grundy(state),
	}

	if maxDepth != Unbounded && depth >= maxDepth {
		node.Truncated = true
		return node
	}

	if _, seen := visited[state.Key()]; seen {
		// Vertex removal strictly shrinks the vertex set, so no cycle can
		// occur with today's move relation. The guard stays for any future
		// non-shrinking move type.
		node.CycleDetected = true
		return node
	}

	if state.IsEmpty() {
		return node
	}

	for _, v := range state.Vertices() {
		successor := state.Copy()
		successor.RemoveVertex(v)

		// Each branch gets its own copy of the ancestor set: sibling
		// branches must never observe each other's visited markers.
		branchVisited := make(map[string]struct{}, len(visited)+1)
		for key := range visited {
			branchVisited[key] = struct{}{}
		}
		branchVisited[state.Key()] = struct{}{}

		node.Children = append(node.Children, b.build(successor, maxDepth, depth+1, branchVisited))
	}
	return node
}
