// Package histogram holds the letter-count vectors the ladder search runs on.
//
// Permuting letters is free in a ladder, so every word is reduced to how many
// times each letter a-z occurs in it. Anagrams share a histogram and one move
// (adding or removing a letter) changes exactly one count by one.
package histogram

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Letters is the alphabet width.
const Letters = 26

// MaxCount is the most copies of one letter a Histogram can hold.
const MaxCount = math.MaxUint16

// ErrTooManyLetters is returned by Parse for words a Histogram cannot hold.
var ErrTooManyLetters = errors.New("too many copies of one letter")

// Histogram counts each letter a-z.
type Histogram [Letters]uint16

// Parse lower-cases the word and counts its ASCII letters.
// Digits, punctuation and other runes are ignored. A letter occurring more
// than MaxCount times is an error.
func Parse(word string) (Histogram, error) {
	var h Histogram
	for _, r := range word {
		var i int
		switch {
		case r >= 'a' && r <= 'z':
			i = int(r - 'a')
		case r >= 'A' && r <= 'Z':
			i = int(r - 'A')
		default:
			continue
		}
		if h[i] == MaxCount {
			return Histogram{}, fmt.Errorf("%w: more than %d %q", ErrTooManyLetters, MaxCount, rune('a'+i))
		}
		h[i]++
	}
	return h, nil
}

// FromWord is Parse for words known to fit. Counts past MaxCount saturate,
// so callers taking arbitrary input must use Parse.
func FromWord(word string) Histogram {
	var h Histogram
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			h[r-'a'] = saturatingInc(h[r-'a'])
		case r >= 'A' && r <= 'Z':
			h[r-'A'] = saturatingInc(h[r-'A'])
		}
	}
	return h
}

func saturatingInc(c uint16) uint16 {
	if c == MaxCount {
		return c
	}
	return c + 1
}

// Distance is the L1 distance between two histograms.
// It never overestimates the number of moves between them.
func Distance(a, b Histogram) int {
	d := 0
	for i := range a {
		if a[i] > b[i] {
			d += int(a[i] - b[i])
		} else {
			d += int(b[i] - a[i])
		}
	}
	return d
}

// Size returns the number of letters.
func (h Histogram) Size() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// IsEmpty reports whether the histogram has no letters at all.
func (h Histogram) IsEmpty() bool {
	return h == Histogram{}
}

// Key returns the anagram signature: the letters in sorted order.
// Two histograms are equal iff their keys are equal.
func (h Histogram) Key() string {
	var sb strings.Builder
	sb.Grow(h.Size())
	for i, c := range h {
		for j := uint16(0); j < c; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// Add returns a copy with one more of the given letter (0-25).
// The second result is false when the letter is already at MaxCount.
func (h Histogram) Add(letter int) (Histogram, bool) {
	if h[letter] == MaxCount {
		return h, false
	}
	h[letter]++
	return h, true
}

// Remove returns a copy with one less of the given letter.
// The second result is false when the letter is absent.
func (h Histogram) Remove(letter int) (Histogram, bool) {
	if h[letter] == 0 {
		return h, false
	}
	h[letter]--
	return h, true
}

// Neighbors returns every histogram exactly one move away, additions first,
// each group in letter order.
func (h Histogram) Neighbors() []Histogram {
	out := make([]Histogram, 0, Letters*2)
	for i := 0; i < Letters; i++ {
		if a, ok := h.Add(i); ok {
			out = append(out, a)
		}
	}
	for i := 0; i < Letters; i++ {
		if r, ok := h.Remove(i); ok {
			out = append(out, r)
		}
	}
	return out
}

// String renders the histogram as its signature, e.g. "act" for "cat".
func (h Histogram) String() string {
	return h.Key()
}
