package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher    string
	Depth       int
	Duration    time.Duration
	Nodes       int // Every visited node, including terminal and cutoff nodes
	Evaluations int // Evaluator calls at the depth cutoff
	Terminals   int // Win, lose or no-move nodes
	Prunes      int // Alpha-beta cutoffs
	Value       float64
}

type MoveMetric struct {
	Step  int
	Agent int
	SearchMetric
}

type GameMetric struct {
	Won        bool
	Lost       bool
	Forfeit    bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(searcher string, depth int)
	AddNode()
	AddEvaluation()
	AddTerminal()
	AddPrune()
	Complete(value float64) SearchMetric
}

type collector struct {
	searcher    string
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
	prunes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(searcher string, depth int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
	m.prunes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) Complete(value float64) SearchMetric {
	return SearchMetric{
		Searcher:    m.searcher,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
		Prunes:      int(m.prunes.Load()),
		Value:       value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, depth int)    {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddEvaluation()                      {}
func (m *dummyCollector) AddTerminal()                        {}
func (m *dummyCollector) AddPrune()                           {}
func (m *dummyCollector) Complete(value float64) SearchMetric { return SearchMetric{} }
