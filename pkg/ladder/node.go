package ladder

import (
	"github.com/bastiangx/wordladder/pkg/histogram"
)

// Node is one search state: where a search stands (an anagram class), how
// many moves it took to get there and which words it went through.
//
// Nodes are identified by their histogram, never by their path. The path is a
// chain of parent links, so extending it is O(1) and it is only walked when a
// result is produced.
type Node struct {
	hist   histogram.Histogram
	g      int // moves from this search's start
	h      int // heuristic distance to this search's target
	word   int // index of the word entered at this node
	parent *Node

	seq       uint64 // frontier insertion order, ties on f go to the smaller seq
	heapIndex int
}

func newRoot(word int, hist, target histogram.Histogram) *Node {
	return &Node{
		hist:      hist,
		h:         histogram.Distance(hist, target),
		word:      word,
		heapIndex: -1,
	}
}

// extend returns the node reached by moving to word, one move later.
func (n *Node) extend(word int, hist, target histogram.Histogram) *Node {
	return &Node{
		hist:      hist,
		g:         n.g + 1,
		h:         histogram.Distance(hist, target),
		word:      word,
		parent:    n,
		heapIndex: -1,
	}
}

// Histogram returns the anagram class this node stands on.
func (n *Node) Histogram() histogram.Histogram { return n.hist }

// Cost returns the number of moves taken so far.
func (n *Node) Cost() int { return n.g }

// Estimate returns the heuristic distance to the target.
func (n *Node) Estimate() int { return n.h }

// Total returns cost plus estimate.
func (n *Node) Total() int { return n.g + n.h }

// Word returns the index of the word this node entered.
func (n *Node) Word() int { return n.word }

// Path returns the word indices from the search start to this node.
// Its length is always Cost()+1.
func (n *Node) Path() []int {
	path := make([]int, n.g+1)
	for cur, i := n, n.g; cur != nil; cur, i = cur.parent, i-1 {
		path[i] = cur.word
	}
	return path
}
