// Package suggest offers "did you mean" corrections for words that are not in
// the dictionary.
package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/samber/lo"
)

// Constants for scoring
const (
	firstCharMatchBonus            = 15
	adjacentMatchBonus             = 10
	unmatchedLeadingCharPenalty    = -3
	maxUnmatchedLeadingCharPenalty = -9
	lengthDiffPenalty              = 2
)

// Match is a scored candidate.
type Match struct {
	Word  string
	Score int
}

// Matcher finds dictionary spellings close to a mistyped word.
type Matcher struct {
	words []string
}

// NewMatcher lower-cases and dedupes the words, keeping their first
// occurrence order.
func NewMatcher(words []string) *Matcher {
	lower := lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	lower = lo.Filter(lo.Uniq(lower), func(w string, _ int) bool {
		return w != ""
	})
	return &Matcher{words: lower}
}

// Suggest returns up to limit corrections for input, best first.
// An exact case-insensitive match is returned on its own.
func (m *Matcher) Suggest(input string, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < 2 || limit <= 0 {
		return nil
	}
	if lo.Contains(m.words, input) {
		return []string{input}
	}

	scored := m.Matches(input)
	if len(scored) == 0 {
		return nil
	}
	matches := lo.Map(scored, func(match Match, _ int) string {
		return match.Word
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Matches scores every candidate sharing the first letter of input. A
// candidate qualifies when either word is a subsequence of the other, so both
// dropped and extra letters are forgiven. Ties keep dictionary order.
func (m *Matcher) Matches(input string) []Match {
	pattern := []rune(strings.ToLower(input))
	if len(pattern) == 0 {
		return nil
	}
	inputHist := histogram.FromWord(input)

	var matches []Match
	for _, candidate := range m.words {
		if len(pattern) > 1 && []rune(candidate)[0] != pattern[0] {
			continue
		}
		score, ok := subsequenceScore(pattern, []rune(candidate))
		if !ok {
			score, ok = subsequenceScore([]rune(candidate), pattern)
		}
		if !ok {
			continue
		}
		score -= lengthDiffPenalty * abs(len(candidate)-len(pattern))
		score -= histogram.Distance(inputHist, histogram.FromWord(candidate))
		matches = append(matches, Match{Word: candidate, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// subsequenceScore reports whether pattern occurs in order within candidate
// and scores the greedy alignment.
func subsequenceScore(pattern, candidate []rune) (int, bool) {
	score := 0
	matched := 0
	lastMatch := -2
	for i, r := range candidate {
		if matched == len(pattern) {
			break
		}
		if r != pattern[matched] {
			continue
		}
		if i == 0 {
			score += firstCharMatchBonus
		}
		if lastMatch == i-1 {
			score += adjacentMatchBonus
		}
		if matched == 0 {
			score += max(i*unmatchedLeadingCharPenalty, maxUnmatchedLeadingCharPenalty)
		}
		lastMatch = i
		matched++
	}
	return score, matched == len(pattern)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
