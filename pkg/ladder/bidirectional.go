package ladder

import (
	"slices"

	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/histogram"
)

// Solution is a complete ladder in start-to-target order.
type Solution struct {
	Path  []int
	Moves int
}

// BidirectionalSearch runs one SearchGraph from each endpoint in strict
// alternation and stops as soon as they meet.
//
// Both graphs are stepped by the same goroutine, so neither needs locking.
type BidirectionalSearch struct {
	forward  *SearchGraph
	backward *SearchGraph
	maxSteps int
}

// NewBidirectionalSearch prepares a forward graph start->target and a
// backward graph target->start.
func NewBidirectionalSearch(idx *dictionary.Index, start, target histogram.Histogram, maxSteps int) (*BidirectionalSearch, error) {
	return newBidirectionalSearch(idx, start, target, maxSteps, nil)
}

func newBidirectionalSearch(idx *dictionary.Index, start, target histogram.Histogram, maxSteps int, tr *tracer) (*BidirectionalSearch, error) {
	forward, err := newSearchGraph(idx, start, target, "forward", tr)
	if err != nil {
		return nil, err
	}
	backward, err := newSearchGraph(idx, target, start, "backward", tr)
	if err != nil {
		return nil, err
	}
	return &BidirectionalSearch{forward: forward, backward: backward, maxSteps: maxSteps}, nil
}

// Steps returns the steps taken by both directions together.
func (b *BidirectionalSearch) Steps() int {
	return b.forward.Steps() + b.backward.Steps()
}

// Search alternates forward and backward steps, checking for a meeting point
// after each one.
func (b *BidirectionalSearch) Search() (*Solution, error) {
	for {
		if b.Steps() >= b.maxSteps {
			return nil, abortedAfter(b.Steps())
		}
		node, status := b.forward.Step()
		switch status {
		case Exhausted:
			return nil, ErrNoPathFound
		case Solved:
			return &Solution{Path: node.Path(), Moves: node.g}, nil
		}
		if s := b.intersect(b.forward.Touched(), true); s != nil {
			return s, nil
		}

		if b.Steps() >= b.maxSteps {
			return nil, abortedAfter(b.Steps())
		}
		node, status = b.backward.Step()
		switch status {
		case Exhausted:
			return nil, ErrNoPathFound
		case Solved:
			path := node.Path()
			slices.Reverse(path)
			return &Solution{Path: path, Moves: node.g}, nil
		}
		if s := b.intersect(b.backward.Touched(), false); s != nil {
			return s, nil
		}
	}
}

// intersect looks for frontier entries shared by both directions. The frontiers
// were disjoint before the last step, so only entries that step touched can
// meet the other side. Among the meetings, the forward entry inserted first
// wins, which is the pair a full forward-by-backward scan would find first.
func (b *BidirectionalSearch) intersect(touched []*Node, fromForward bool) *Solution {
	other := b.forward
	if fromForward {
		other = b.backward
	}

	var fwd, bwd *Node
	for _, n := range touched {
		match, ok := other.open.get(n.hist)
		if !ok {
			continue
		}
		f, bk := match, n
		if fromForward {
			f, bk = n, match
		}
		if fwd == nil || f.seq < fwd.seq {
			fwd, bwd = f, bk
		}
	}
	if fwd == nil {
		return nil
	}
	return fuse(fwd, bwd)
}

// fuse joins a forward node and a backward node standing on the same class.
// The backward path is reversed and its copy of the meeting class dropped.
func fuse(fwd, bwd *Node) *Solution {
	path := fwd.Path()
	back := bwd.Path()
	for i := len(back) - 2; i >= 0; i-- {
		path = append(path, back[i])
	}
	return &Solution{Path: path, Moves: fwd.g + bwd.g}
}
