package solver

import "hypernim/game"

type Option func(e *Evaluator)

// WithMetrics installs a real metrics collector; the default collector
// discards everything.
func WithMetrics() Option {
	return func(e *Evaluator) {
		e.metrics = NewCollector()
	}
}

// Evaluator computes Grundy numbers for hypergraph positions, memoized on
// the state's canonical structural identity. The cache is owned by the
// evaluator instance: it is append-only for the lifetime of a session, has
// no eviction policy, and is cleared with Reset. The cache is what keeps
// repeated evaluation of identical vertex subsets (reached via different
// removal orders) tractable; without it the recursion would still be
// correct but explore n! removal paths instead of at most 2^n subsets.
type Evaluator struct {
	cache   map[string]int
	metrics Collector
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{
		cache:   make(map[string]int),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Grundy returns the Grundy number of state: 0 for the empty position,
// otherwise the MEX of the Grundy numbers of every position reachable by
// removing one vertex (with cascading edge/face removal). The live argument
// is never mutated; every successor is an independent copy.
func (e *Evaluator) Grundy(state *game.Hypergraph) int {
	key := state.Key()
	if value, ok := e.cache[key]; ok {
		e.metrics.AddHit()
		return value
	}
	e.metrics.AddMiss()

	var value int
	if !state.IsEmpty() {
		reachable := make([]int, 0, state.NumVertices())
		for _, v := range state.Vertices() {
			successor := state.Copy()
			successor.RemoveVertex(v)
			reachable = append(reachable, e.Grundy(successor))
		}
		value = Mex(reachable)
	}

	e.cache[key] = value
	e.metrics.AddEvaluated()
	return value
}

// Reset clears the memoization cache.
func (e *Evaluator) Reset() {
	e.cache = make(map[string]int)
}

// CacheSize returns the number of cached positions.
func (e *Evaluator) CacheSize() int {
	return len(e.cache)
}

// Metrics returns a snapshot of the session's evaluation metrics.
func (e *Evaluator) Metrics() EvalMetrics {
	return e.metrics.Snapshot()
}
