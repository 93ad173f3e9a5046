package ladder

import (
	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/bastiangx/wordladder/pkg/metrics"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

// StepStatus is the outcome of one SearchGraph step.
type StepStatus int

const (
	// InProgress means one node was expanded and no solution was found yet.
	InProgress StepStatus = iota
	// Solved means the popped node stands on the target.
	Solved
	// Exhausted means the frontier was empty.
	Exhausted
)

func (s StepStatus) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// SearchGraph is a unidirectional A* search from one endpoint toward the
// other. It owns its frontier and closed set; the index is shared read-only.
type SearchGraph struct {
	index  *dictionary.Index
	target histogram.Histogram
	open   *frontier
	closed map[histogram.Histogram]*Node

	// touched holds the frontier entries the last step inserted or replaced.
	touched []*Node
	steps   int

	direction  string
	expansions prometheus.Counter
	tracer     *tracer
}

// NewSearchGraph anchors a search at start. The root enters the dictionary
// through the first word of start's anagram class.
func NewSearchGraph(idx *dictionary.Index, start, target histogram.Histogram) (*SearchGraph, error) {
	return newSearchGraph(idx, start, target, "forward", nil)
}

func newSearchGraph(idx *dictionary.Index, start, target histogram.Histogram, direction string, tr *tracer) (*SearchGraph, error) {
	word, ok := idx.FindByHistogram(start)
	if !ok {
		return nil, &WordNotFoundError{Word: start.Key()}
	}

	g := &SearchGraph{
		index:      idx,
		target:     target,
		open:       newFrontier(),
		closed:     make(map[histogram.Histogram]*Node),
		direction:  direction,
		expansions: metrics.ExpansionsTotal.WithLabelValues(direction),
		tracer:     tr,
	}
	g.open.push(newRoot(word, start, target))
	return g, nil
}

// Step pops the cheapest frontier node. A node on the target is returned as a
// solution; any other node is closed and its one-move neighbours are offered
// to the frontier.
func (g *SearchGraph) Step() (*Node, StepStatus) {
	g.touched = g.touched[:0]
	if g.open.Len() == 0 {
		return nil, Exhausted
	}
	g.steps++

	current := g.open.pop()
	if current.h == 0 {
		return current, Solved
	}
	g.closed[current.hist] = current
	g.expansions.Inc()
	g.tracer.expand(g.direction, current)

	for _, i := range g.index.Neighbors(current.hist) {
		g.relax(current.extend(i, g.index.HistogramOf(i), g.target))
	}
	return current, InProgress
}

// relax files a successor: closed classes are final, a frontier duplicate is
// replaced only by a strictly cheaper candidate.
func (g *SearchGraph) relax(candidate *Node) {
	if _, done := g.closed[candidate.hist]; done {
		return
	}
	if existing, ok := g.open.get(candidate.hist); ok {
		if candidate.Total() < existing.Total() {
			g.open.replace(existing, candidate)
			g.touched = append(g.touched, candidate)
		}
		return
	}
	g.open.push(candidate)
	g.touched = append(g.touched, candidate)
}

// Search steps until the target is reached, the frontier empties or maxSteps
// steps have been taken.
func (g *SearchGraph) Search(maxSteps int) (*Node, error) {
	for {
		if g.steps >= maxSteps {
			return nil, abortedAfter(g.steps)
		}
		node, status := g.Step()
		switch status {
		case Solved:
			return node, nil
		case Exhausted:
			return nil, ErrNoPathFound
		}
	}
}

// Steps returns how many nodes were popped so far.
func (g *SearchGraph) Steps() int { return g.steps }

// FrontierLen returns the number of open nodes.
func (g *SearchGraph) FrontierLen() int { return g.open.Len() }

// ClosedLen returns the number of expanded nodes.
func (g *SearchGraph) ClosedLen() int { return len(g.closed) }

// Touched returns the frontier entries inserted or replaced by the last step.
// The slice is reused by the next step.
func (g *SearchGraph) Touched() []*Node { return g.touched }

// tracer logs every expansion when tracing is on.
type tracer struct {
	level  int
	index  *dictionary.Index
	logger *log.Logger
}

func (t *tracer) expand(direction string, n *Node) {
	if t == nil || t.level <= 0 {
		return
	}
	path := n.Path()
	if t.level == 1 {
		t.logger.Print("expand", "dir", direction, "g", n.g, "h", n.h, "path", path)
		return
	}
	words := make([]string, len(path))
	for i, w := range path {
		words[i] = t.index.Word(w)
	}
	t.logger.Print("expand", "dir", direction, "g", n.g, "h", n.h, "path", words)
}
