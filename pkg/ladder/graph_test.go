package ladder

import (
	"testing"

	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_Order(t *testing.T) {
	f := newFrontier()
	mk := func(g, h int) *Node { return &Node{g: g, h: h, heapIndex: -1} }

	a, b, c, d := mk(2, 2), mk(0, 4), mk(1, 1), mk(3, 1)
	for _, n := range []*Node{a, b, c, d} {
		f.push(n)
	}

	// c has the lowest total, a, b and d tie on 4 and leave in push order.
	for _, expected := range []*Node{c, a, b, d} {
		require.Same(t, expected, f.pop())
	}
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_Replace(t *testing.T) {
	f := newFrontier()
	h1 := histogram.FromWord("ab")
	h2 := histogram.FromWord("cd")

	first := &Node{hist: h1, g: 1, h: 1, heapIndex: -1}
	stale := &Node{hist: h2, g: 5, h: 1, heapIndex: -1}
	f.push(first)
	f.push(stale)

	better := &Node{hist: h2, g: 0, h: 1, heapIndex: -1}
	f.replace(stale, better)

	assert.Equal(t, 2, f.Len())
	got, ok := f.get(h2)
	require.True(t, ok)
	assert.Same(t, better, got)
	assert.Equal(t, stale.seq, better.seq)
	assert.Equal(t, -1, stale.heapIndex)

	assert.Same(t, better, f.pop())
	assert.Same(t, first, f.pop())
	_, ok = f.get(h2)
	assert.False(t, ok)
}

func TestSearchGraph_Relax(t *testing.T) {
	idx := dictionary.New([]string{"cat", "cats", "at"})
	target := histogram.FromWord("at")

	g, err := NewSearchGraph(idx, histogram.FromWord("act"), target)
	require.NoError(t, err)
	root, ok := g.open.get(histogram.FromWord("act"))
	require.True(t, ok)

	cats := histogram.FromWord("cats")
	far := &Node{hist: cats, g: 3, h: histogram.Distance(cats, target), word: 1, parent: root, heapIndex: -1}
	g.open.push(far)

	t.Run("Costlier duplicate is dropped", func(t *testing.T) {
		g.touched = g.touched[:0]
		worse := &Node{hist: cats, g: 4, h: far.h, word: 1, heapIndex: -1}
		g.relax(worse)
		got, _ := g.open.get(cats)
		assert.Same(t, far, got)
		assert.Empty(t, g.Touched())
	})

	t.Run("Equal cost duplicate is dropped", func(t *testing.T) {
		g.touched = g.touched[:0]
		g.relax(&Node{hist: cats, g: 3, h: far.h, word: 1, heapIndex: -1})
		got, _ := g.open.get(cats)
		assert.Same(t, far, got)
		assert.Empty(t, g.Touched())
	})

	t.Run("Cheaper duplicate replaces the entry", func(t *testing.T) {
		g.touched = g.touched[:0]
		better := root.extend(1, cats, target)
		g.relax(better)

		assert.Equal(t, 2, g.FrontierLen())
		got, _ := g.open.get(cats)
		assert.Same(t, better, got)
		assert.Equal(t, []*Node{better}, g.Touched())
		assert.Equal(t, []int{0, 1}, better.Path())
	})

	t.Run("Closed class is final", func(t *testing.T) {
		node, status := g.Step()
		require.Equal(t, InProgress, status)
		assert.Same(t, root, node)
		assert.Equal(t, 1, g.ClosedLen())

		g.touched = g.touched[:0]
		g.relax(&Node{hist: root.hist, g: 0, heapIndex: -1})
		assert.Empty(t, g.Touched())
	})
}

func TestSearchGraph_Steps(t *testing.T) {
	idx := dictionary.New([]string{"a", "at", "cat"})

	g, err := NewSearchGraph(idx, histogram.FromWord("a"), histogram.FromWord("cat"))
	require.NoError(t, err)

	statuses := []StepStatus{}
	var last *Node
	for {
		node, status := g.Step()
		statuses = append(statuses, status)
		if status != InProgress {
			last = node
			break
		}
	}
	assert.Equal(t, []StepStatus{InProgress, InProgress, Solved}, statuses)
	assert.Equal(t, []int{0, 1, 2}, last.Path())
	assert.Equal(t, 2, last.Cost())
	assert.Equal(t, 0, last.Estimate())
	assert.Equal(t, 3, g.Steps())

	_, err = NewSearchGraph(idx, histogram.FromWord("dog"), histogram.FromWord("cat"))
	assert.ErrorIs(t, err, ErrWordNotInDictionary)
}

func TestSearchGraph_Exhausted(t *testing.T) {
	idx := dictionary.New([]string{"a", "b"})

	g, err := NewSearchGraph(idx, histogram.FromWord("a"), histogram.FromWord("b"))
	require.NoError(t, err)

	_, status := g.Step()
	assert.Equal(t, InProgress, status)
	_, status = g.Step()
	assert.Equal(t, Exhausted, status)
	assert.Equal(t, "exhausted", status.String())

	_, err = g.Search(10)
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestBidirectionalSearch_Fuse(t *testing.T) {
	testCases := []struct {
		words       []string
		start       string
		target      string
		path        []int
		moves       int
		description string
	}{
		{[]string{"a", "at", "cat"}, "a", "cat", []int{0, 1, 2}, 2, "Meet in the middle"},
		{[]string{"at", "cat"}, "at", "cat", []int{0, 1}, 1, "Meet at the backward root"},
		{[]string{"cat"}, "cat", "act", []int{0}, 0, "Same class"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			idx := dictionary.New(tc.words)
			search, err := NewBidirectionalSearch(idx, histogram.FromWord(tc.start), histogram.FromWord(tc.target), 100)
			require.NoError(t, err)

			solution, err := search.Search()
			require.NoError(t, err)
			assert.Equal(t, tc.path, solution.Path)
			assert.Equal(t, tc.moves, solution.Moves)
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "found", outcome(nil))
	assert.Equal(t, "not_in_dictionary", outcome(&WordNotFoundError{Word: "x"}))
	assert.Equal(t, "no_path", outcome(ErrNoPathFound))
	assert.Equal(t, "aborted", outcome(abortedAfter(3)))
	assert.Equal(t, "error", outcome(assert.AnError))
}
