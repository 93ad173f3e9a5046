package dictionary

import (
	"strings"
	"testing"

	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{"cat", "cats", "cast", "cost", "cot", "cop", "act", "Scat", "42"}

// linearFind is the reference lookup: first entry in file order.
func linearFind(idx *Index, h histogram.Histogram) (int, bool) {
	if h.IsEmpty() {
		return -1, false
	}
	for i := 0; i < idx.Len(); i++ {
		if idx.HistogramOf(i) == h {
			return i, true
		}
	}
	return -1, false
}

func TestFindByHistogram(t *testing.T) {
	idx := New(sampleWords)

	testCases := []struct {
		word        string
		expected    int
		found       bool
		description string
	}{
		{"cat", 0, true, "Exact word"},
		{"tac", 0, true, "Anagram resolves to the first class member"},
		{"act", 0, true, "Later anagram still resolves to first"},
		{"cats", 1, true, "Class of cats/cast/Scat"},
		{"TSAC", 1, true, "Case insensitive"},
		{"cost", 3, true, "Single member class"},
		{"xyz", -1, false, "Not in dictionary"},
		{"", -1, false, "Empty histogram is never found"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			h := histogram.FromWord(tc.word)
			i, ok := idx.FindByHistogram(h)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, i)

			li, lok := linearFind(idx, h)
			assert.Equal(t, lok, ok, "must agree with the linear scan")
			assert.Equal(t, li, i, "must agree with the linear scan")
		})
	}
}

func TestAnagrams(t *testing.T) {
	idx := New(sampleWords)

	assert.Equal(t, []int{1, 2, 7}, idx.Anagrams(histogram.FromWord("cats")))
	assert.Equal(t, []int{0, 6}, idx.Anagrams(histogram.FromWord("cat")))
	assert.Nil(t, idx.Anagrams(histogram.FromWord("dog")))
}

func TestNeighbors(t *testing.T) {
	idx := New(sampleWords)

	// cot: +s -> cost(3), -o/-c/-t -> nothing, cop is two moves away.
	assert.Equal(t, []int{3}, idx.Neighbors(histogram.FromWord("cot")))
	// cat: +s -> cats class represented by 1.
	assert.Equal(t, []int{1}, idx.Neighbors(histogram.FromWord("cat")))
	// cats: -s -> cat(0). cost is two moves away.
	assert.Equal(t, []int{0}, idx.Neighbors(histogram.FromWord("cats")))
	assert.Empty(t, idx.Neighbors(histogram.FromWord("cop")))
}

// Neighbors matches a full scan that keeps the first entry of each class at
// distance one, in index order.
func TestNeighbors_MatchesScan(t *testing.T) {
	words := []string{"a", "at", "ta", "tab", "bat", "bit", "b", "ab", "abba", "tabs", "stab", "bats"}
	idx := New(words)

	for _, probe := range []string{"a", "at", "tab", "b", "bats", "z"} {
		h := histogram.FromWord(probe)
		var expected []int
		seen := map[histogram.Histogram]bool{}
		for i := 0; i < idx.Len(); i++ {
			hi := idx.HistogramOf(i)
			if histogram.Distance(hi, h) != 1 || seen[hi] {
				continue
			}
			seen[hi] = true
			expected = append(expected, i)
		}
		assert.Equal(t, expected, idx.Neighbors(h), "probe %q", probe)
	}
}

func TestNew_UnindexedEntries(t *testing.T) {
	idx := New(sampleWords)
	stats := idx.Stats()

	assert.Equal(t, len(sampleWords), stats.Words)
	assert.Equal(t, 1, stats.Unindexed)
	// act-class, acst-class, cost, cot, cop
	assert.Equal(t, 5, stats.Classes)

	require.Equal(t, "42", idx.Word(8))
	assert.True(t, idx.HistogramOf(8).IsEmpty())
}

func TestNew_EntryTooLongToCount(t *testing.T) {
	long := strings.Repeat("a", histogram.MaxCount+1) + "b"
	idx := New([]string{long, "b"})

	assert.Equal(t, 1, idx.Stats().Unindexed)
	assert.Equal(t, 1, idx.Stats().Classes)
	i, ok := idx.FindByHistogram(histogram.FromWord("b"))
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Empty(t, idx.Anagrams(histogram.FromWord(long)))
}

func TestNew_CopiesInput(t *testing.T) {
	words := []string{"cat", "dog"}
	idx := New(words)
	words[0] = "mutated"

	assert.Equal(t, "cat", idx.Word(0))
	out := idx.Words()
	out[1] = "mutated"
	assert.Equal(t, "dog", idx.Word(1))
}
