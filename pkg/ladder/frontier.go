package ladder

import (
	"container/heap"

	"github.com/bastiangx/wordladder/pkg/histogram"
)

// nodeHeap orders nodes by total cost, then by insertion order.
type nodeHeap []*Node

func (q nodeHeap) Len() int { return len(q) }

func (q nodeHeap) Less(i, j int) bool {
	if fi, fj := q[i].Total(), q[j].Total(); fi != fj {
		return fi < fj
	}
	return q[i].seq < q[j].seq
}

func (q nodeHeap) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex = i
	q[j].heapIndex = j
}

func (q *nodeHeap) Push(x any) {
	n := x.(*Node)
	n.heapIndex = len(*q)
	*q = append(*q, n)
}

func (q *nodeHeap) Pop() any {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.heapIndex = -1
	*q = old[:last]
	return n
}

// frontier is the open set: a binary heap plus a histogram lookup so that a
// cheaper duplicate can replace the stored entry in place.
type frontier struct {
	items   nodeHeap
	byHist  map[histogram.Histogram]*Node
	nextSeq uint64
}

func newFrontier() *frontier {
	return &frontier{
		items:  make(nodeHeap, 0, 64),
		byHist: make(map[histogram.Histogram]*Node),
	}
}

func (f *frontier) Len() int { return f.items.Len() }

func (f *frontier) push(n *Node) {
	n.seq = f.nextSeq
	f.nextSeq++
	heap.Push(&f.items, n)
	f.byHist[n.hist] = n
}

func (f *frontier) pop() *Node {
	n := heap.Pop(&f.items).(*Node)
	delete(f.byHist, n.hist)
	return n
}

func (f *frontier) get(h histogram.Histogram) (*Node, bool) {
	n, ok := f.byHist[h]
	return n, ok
}

// replace swaps old for n in the same heap slot and restores heap order.
// n inherits old's insertion order.
func (f *frontier) replace(old, n *Node) {
	n.seq = old.seq
	n.heapIndex = old.heapIndex
	f.items[n.heapIndex] = n
	old.heapIndex = -1
	f.byHist[n.hist] = n
	heap.Fix(&f.items, n.heapIndex)
}
