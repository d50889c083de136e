package solver

import "sync/atomic"

// EvalMetrics summarizes one evaluation session.
type EvalMetrics struct {
	Evaluated int64 // states evaluated and cached
	Hits      int64 // cache lookups answered from the cache
	Misses    int64 // cache lookups that required evaluation
}

// Collector accumulates evaluation metrics.
type Collector interface {
	AddEvaluated()
	AddHit()
	AddMiss()
	Snapshot() EvalMetrics
}

type collector struct {
	evaluated atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddEvaluated() {
	c.evaluated.Add(1)
}

func (c *collector) AddHit() {
	c.hits.Add(1)
}

func (c *collector) AddMiss() {
	c.misses.Add(1)
}

func (c *collector) Snapshot() EvalMetrics {
	return EvalMetrics{
		Evaluated: c.evaluated.Load(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddEvaluated()         {}
func (c *dummyCollector) AddHit()               {}
func (c *dummyCollector) AddMiss()              {}
func (c *dummyCollector) Snapshot() EvalMetrics { return EvalMetrics{} }
