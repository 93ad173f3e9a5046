/*
Package dictionary builds the read-only word index the ladder search runs on
and loads it from plain text or compiled binary word lists.

An Index is built once and never mutated afterwards, so both search
directions share it without locking. Every entry keeps its original spelling
and its letter histogram, in file order. The position of an entry is stable
and is the tie-break key everywhere: when several words are anagrams of each
other, the first one in the file represents the whole class.

Anagram classes are stored in a patricia trie keyed by the sorted-letter
signature of the histogram, so looking up a class costs one walk over a key no
longer than the word itself.

	idx, err := dictionary.LoadFile("wordlist.txt")
	if err != nil {
		return err
	}
	i, ok := idx.FindByHistogram(histogram.FromWord("tac"))
	// idx.Word(i) == "cat" when "cat" precedes "act" in the file
*/
package dictionary

import (
	"sort"

	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// anagramClass lists the entries sharing one histogram, in file order.
type anagramClass struct {
	members []int
}

// Index is the immutable word index.
type Index struct {
	words   []string
	hists   []histogram.Histogram
	classes *patricia.Trie
	stats   IndexStats
}

// IndexStats summarizes an Index.
type IndexStats struct {
	Words     int
	Classes   int
	Unindexed int // entries without letters or too long to count, kept for display only
}

// New indexes words in the given order.
// Entries without any letter, or with more than histogram.MaxCount copies of
// one, keep their index but join no anagram class.
func New(words []string) *Index {
	idx := &Index{
		words:   make([]string, len(words)),
		hists:   make([]histogram.Histogram, len(words)),
		classes: patricia.NewTrie(),
	}
	copy(idx.words, words)

	for i, word := range words {
		h, err := histogram.Parse(word)
		if err != nil {
			log.Warnf("Skipping entry %d: %v", i, err)
		}
		idx.hists[i] = h
		if h.IsEmpty() {
			idx.stats.Unindexed++
			continue
		}

		key := patricia.Prefix(h.Key())
		if item := idx.classes.Get(key); item != nil {
			class := item.(*anagramClass)
			class.members = append(class.members, i)
			continue
		}
		idx.classes.Insert(key, &anagramClass{members: []int{i}})
		idx.stats.Classes++
	}
	idx.stats.Words = len(words)

	log.Debugf("Indexed %d words into %d anagram classes", idx.stats.Words, idx.stats.Classes)
	return idx
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Word returns the original spelling of entry i.
func (idx *Index) Word(i int) string {
	return idx.words[i]
}

// Words returns a copy of every original spelling in file order.
func (idx *Index) Words() []string {
	out := make([]string, len(idx.words))
	copy(out, idx.words)
	return out
}

// HistogramOf returns the histogram of entry i.
func (idx *Index) HistogramOf(i int) histogram.Histogram {
	return idx.hists[i]
}

// Stats returns word and class counts.
func (idx *Index) Stats() IndexStats {
	return idx.stats
}

func (idx *Index) class(h histogram.Histogram) *anagramClass {
	if h.IsEmpty() {
		return nil
	}
	item := idx.classes.Get(patricia.Prefix(h.Key()))
	if item == nil {
		return nil
	}
	return item.(*anagramClass)
}

// FindByHistogram returns the lowest index whose histogram equals h.
// The result is the same as scanning the entries in order and stopping at the
// first match.
func (idx *Index) FindByHistogram(h histogram.Histogram) (int, bool) {
	class := idx.class(h)
	if class == nil {
		return -1, false
	}
	return class.members[0], true
}

// Anagrams returns every entry sharing h, in file order.
func (idx *Index) Anagrams(h histogram.Histogram) []int {
	class := idx.class(h)
	if class == nil {
		return nil
	}
	out := make([]int, len(class.members))
	copy(out, class.members)
	return out
}

// Neighbors returns the representative of every anagram class exactly one move
// away from h, in ascending index order.
func (idx *Index) Neighbors(h histogram.Histogram) []int {
	var out []int
	for _, n := range h.Neighbors() {
		if i, ok := idx.FindByHistogram(n); ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
