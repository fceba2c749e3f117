// Package metrics collects per-search and per-game measurements for
// experiments, and writes them out as CSV.
package metrics

import "time"

// SearchMetric describes a single minimax search: how many states it
// visited, how many sibling scans alpha-beta cut short, and how long it
// took.
type SearchMetric struct {
	Pruning  bool
	Nodes    int
	Cutoffs  int
	Duration time.Duration
}

// Collector accumulates one search's metric. The search is
// single-threaded, so plain counters suffice.
type Collector interface {
	Start(pruning bool)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	pruning   bool
	nodes     int
	cutoffs   int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(pruning bool) {
	c.pruning = pruning
	c.nodes = 0
	c.cutoffs = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddCutoff() {
	c.cutoffs++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Pruning:  c.pruning,
		Nodes:    c.nodes,
		Cutoffs:  c.cutoffs,
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for searches that are not
// being measured.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(pruning bool)     {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
