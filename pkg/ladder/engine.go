/*
Package ladder finds shortest word ladders where each move adds or removes one
letter and rearranging letters is free.

Because permutations cost nothing, the search never looks at spellings: it
walks anagram classes (letter histograms) with A*, guided by the L1 distance
between histograms. That heuristic is admissible and consistent, since one
move changes one letter count by one. By default two searches run in strict
alternation, one from each endpoint, and the ladder is assembled where their
frontiers meet.

	idx, _ := dictionary.LoadFile("wordlist.txt")
	words, err := ladder.Run("cat", "pot", idx, ladder.WithMaxSteps(100000))
	switch {
	case errors.Is(err, ladder.ErrWordNotInDictionary):
	case errors.Is(err, ladder.ErrNoPathFound):
	case errors.Is(err, ladder.ErrAborted):
	}

The search space of a large dictionary is unbounded in practice when no ladder
exists, so every search runs under a step budget and reports ErrAborted when
it runs out.
*/
package ladder

import (
	"time"

	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/bastiangx/wordladder/pkg/metrics"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// DefaultMaxSteps bounds the number of node expansions of one search.
const DefaultMaxSteps = 250000

// Options defines parameters for the search.
type Options struct {
	MaxSteps      int
	Bidirectional bool
	Trace         int
	Logger        *log.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxSteps sets the step budget shared by both directions.
// Values below one keep the default.
func WithMaxSteps(maxSteps int) Option {
	return func(options *Options) {
		if maxSteps > 0 {
			options.MaxSteps = maxSteps
		}
	}
}

// WithBidirectional switches between the two-sided search (default) and a
// single forward A*.
func WithBidirectional(enabled bool) Option {
	return func(options *Options) { options.Bidirectional = enabled }
}

// WithTrace logs every expansion: 1 prints paths as word indices, 2 as words.
func WithTrace(level int) Option {
	return func(options *Options) { options.Trace = level }
}

// WithLogger sets the logger used for tracing and debug output.
func WithLogger(logger *log.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// Result is a found ladder.
type Result struct {
	Words   []string // start and target spelled as given
	Indices []int    // dictionary entries visited
	Moves   int      // letter additions and removals
	Steps   int      // nodes popped by all directions
}

// Run returns the ladder from start to target, one word per rung.
func Run(start, target string, idx *dictionary.Index, options ...Option) ([]string, error) {
	result, err := Solve(start, target, idx, options...)
	if err != nil {
		return nil, err
	}
	return result.Words, nil
}

// Solve is Run with search statistics.
func Solve(start, target string, idx *dictionary.Index, options ...Option) (result *Result, err error) {
	searchOptions := Options{
		MaxSteps:      DefaultMaxSteps,
		Bidirectional: true,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	logger := searchOptions.Logger
	if logger == nil {
		logger = log.Default()
	}

	began := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(began).Seconds())
		metrics.SearchesTotal.WithLabelValues(outcome(err)).Inc()
		if result != nil {
			metrics.LadderLength.Observe(float64(result.Moves))
		}
	}()

	var hists [2]histogram.Histogram
	for i, word := range []string{start, target} {
		// A word too long to count cannot be an indexed entry either.
		h, err := histogram.Parse(word)
		if err != nil {
			return nil, &WordNotFoundError{Word: word}
		}
		if _, ok := idx.FindByHistogram(h); !ok {
			return nil, &WordNotFoundError{Word: word}
		}
		hists[i] = h
	}
	startHist, targetHist := hists[0], hists[1]

	var tr *tracer
	if searchOptions.Trace > 0 {
		tr = &tracer{level: searchOptions.Trace, index: idx, logger: logger}
	}

	var (
		found *Solution
		steps int
	)
	if searchOptions.Bidirectional {
		search, err := newBidirectionalSearch(idx, startHist, targetHist, searchOptions.MaxSteps, tr)
		if err != nil {
			return nil, err
		}
		found, err = search.Search()
		steps = search.Steps()
		if err != nil {
			logger.Debug("bidirectional search failed", "from", start, "to", target, "steps", steps, "err", err)
			return nil, err
		}
	} else {
		graph, err := newSearchGraph(idx, startHist, targetHist, "forward", tr)
		if err != nil {
			return nil, err
		}
		node, err := graph.Search(searchOptions.MaxSteps)
		steps = graph.Steps()
		if err != nil {
			logger.Debug("forward search failed", "from", start, "to", target, "steps", steps, "err", err)
			return nil, err
		}
		found = &Solution{Path: node.Path(), Moves: node.g}
	}

	logger.Debug("ladder found", "from", start, "to", target, "moves", found.Moves, "steps", steps)
	return &Result{
		Words:   Materialize(idx, found.Path, start, target),
		Indices: found.Path,
		Moves:   found.Moves,
		Steps:   steps,
	}, nil
}

// Materialize spells out a path of word indices. The first and last rungs are
// the words exactly as the caller typed them, whichever anagram the
// dictionary holds for their class.
func Materialize(idx *dictionary.Index, path []int, start, target string) []string {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 {
		if start == target {
			return []string{start}
		}
		// Same class, different spelling: one free rearrangement.
		return []string{start, target}
	}

	words := lo.Map(path, func(i int, _ int) string {
		return idx.Word(i)
	})
	words[0] = start
	words[len(words)-1] = target
	return words
}
