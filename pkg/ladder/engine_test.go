package ladder

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/histogram"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainWords has exactly one shortest ladder cat -> pot, and lists "top"
// before "pot" so the dictionary representative of the target class differs
// from the typed target.
var chainWords = []string{"cat", "at", "oat", "to", "top", "pot"}

// bfsMoves is the reference shortest ladder length over anagram classes.
func bfsMoves(idx *dictionary.Index, start, target string) (int, bool) {
	from := histogram.FromWord(start)
	to := histogram.FromWord(target)
	if _, ok := idx.FindByHistogram(from); !ok {
		return 0, false
	}
	dist := map[histogram.Histogram]int{from: 0}
	queue := []histogram.Histogram{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return dist[cur], true
		}
		for _, i := range idx.Neighbors(cur) {
			next := idx.HistogramOf(i)
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}

// assertValidLadder checks every rung is an anagram of, or one move from, the
// previous one and that the move count adds up.
func assertValidLadder(t *testing.T, words []string, moves int) {
	t.Helper()
	counted := 0
	for i := 1; i < len(words); i++ {
		d := histogram.Distance(histogram.FromWord(words[i-1]), histogram.FromWord(words[i]))
		require.LessOrEqual(t, d, 1, "%q -> %q is not a ladder move", words[i-1], words[i])
		counted += d
	}
	assert.Equal(t, moves, counted)
}

func TestSolve_Fixtures(t *testing.T) {
	small := []string{"cat", "cats", "cast", "cost", "cot", "cop"}

	testCases := []struct {
		words       []string
		start       string
		target      string
		expected    []string
		err         error
		description string
	}{
		{small, "cat", "cat", []string{"cat"}, nil, "Same word is a zero move ladder"},
		{small, "cat", "xyz", nil, ErrWordNotInDictionary, "Target not in dictionary"},
		{small, "xyz", "cat", nil, ErrWordNotInDictionary, "Start not in dictionary"},
		{small, "", "cat", nil, ErrWordNotInDictionary, "Empty start"},
		{[]string{"a", "b"}, "a", "b", nil, ErrNoPathFound, "Disconnected dictionary"},
		// cop has no one-letter neighbour in this dictionary.
		{small, "cat", "cop", nil, ErrNoPathFound, "Isolated target"},
		{chainWords, "cat", "pot", []string{"cat", "at", "oat", "to", "pot"}, nil, "Chain ladder"},
		{chainWords, "pot", "cat", []string{"pot", "to", "oat", "at", "cat"}, nil, "Chain ladder reversed"},
		{chainWords, "at", "oat", []string{"at", "oat"}, nil, "Adjacent words"},
		{small, "cat", "act", []string{"cat", "act"}, nil, "Anagram endpoints"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			idx := dictionary.New(tc.words)
			words, err := Run(tc.start, tc.target, idx)
			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				assert.Nil(t, words)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, words)
		})
	}
}

func TestSolve_WordNotFoundNamesTheWord(t *testing.T) {
	idx := dictionary.New([]string{"cat"})
	_, err := Run("cat", "Xyz", idx)

	var notFound *WordNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Xyz", notFound.Word)
}

func TestSolve_EndpointTooLongToCount(t *testing.T) {
	idx := dictionary.New([]string{"b"})
	long := strings.Repeat("a", histogram.MaxCount+1) + "b"

	_, err := Run(long, "b", idx)
	assert.ErrorIs(t, err, ErrWordNotInDictionary)
	_, err = Run("b", long, idx)
	assert.ErrorIs(t, err, ErrWordNotInDictionary)
}

func TestSolve_EndpointFidelity(t *testing.T) {
	idx := dictionary.New(chainWords)

	// "act" and "opt" are not dictionary words but are anagrams of some.
	result, err := Solve("ACT", "opt", idx)
	require.NoError(t, err)

	assert.Equal(t, "ACT", result.Words[0])
	assert.Equal(t, "opt", result.Words[len(result.Words)-1])
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.Indices)
	assert.Equal(t, 4, result.Moves)
	assert.Len(t, result.Words, result.Moves+1)
}

func TestSolve_Statistics(t *testing.T) {
	idx := dictionary.New(chainWords)

	result, err := Solve("cat", "pot", idx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Moves)
	// forward, backward, forward, backward: the fourth step meets.
	assert.Equal(t, 4, result.Steps)

	result, err = Solve("cat", "pot", idx, WithBidirectional(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "at", "oat", "to", "pot"}, result.Words)
	assert.Equal(t, 4, result.Moves)
	assert.Equal(t, 5, result.Steps)
}

func TestSolve_Detour(t *testing.T) {
	// ab and cd share no letter; the only route goes through abc, bc, bcd.
	idx := dictionary.New([]string{"ab", "abc", "bc", "bcd", "cd", "xy"})

	for _, bidirectional := range []bool{true, false} {
		result, err := Solve("ab", "cd", idx, WithBidirectional(bidirectional))
		require.NoError(t, err)
		assert.Equal(t, []string{"ab", "abc", "bc", "bcd", "cd"}, result.Words)

		expected, ok := bfsMoves(idx, "ab", "cd")
		require.True(t, ok)
		assert.Equal(t, expected, result.Moves)
	}
}

func TestSolve_Aborted(t *testing.T) {
	idx := dictionary.New(chainWords)

	testCases := []struct {
		options     []Option
		description string
	}{
		{[]Option{WithMaxSteps(3)}, "Bidirectional budget"},
		{[]Option{WithMaxSteps(1)}, "Single step budget"},
		{[]Option{WithMaxSteps(4), WithBidirectional(false)}, "Forward budget"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := Run("cat", "pot", idx, tc.options...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAborted)
			assert.NotErrorIs(t, err, ErrNoPathFound)
		})
	}

	// A budget of zero keeps the default.
	_, err := Run("cat", "pot", idx, WithMaxSteps(0))
	assert.NoError(t, err)
}

func TestSolve_Deterministic(t *testing.T) {
	words := []string{"ate", "eat", "tea", "at", "a", "tab", "bat", "beat", "bet", "be", "b", "tabs", "stab", "best", "bets", "set", "sat", "as", "es"}
	idx := dictionary.New(words)

	pairs := [][2]string{{"eat", "best"}, {"a", "bets"}, {"tea", "as"}, {"stab", "es"}}
	for _, pair := range pairs {
		first, err := Run(pair[0], pair[1], idx)
		require.NoError(t, err, "%v", pair)
		for i := 0; i < 5; i++ {
			again, err := Run(pair[0], pair[1], idx)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

// Random small dictionaries: any returned ladder is valid, never shorter than
// the BFS optimum, and found exactly when BFS finds one.
func TestSolve_RandomDictionaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	letters := "abcd"

	for round := 0; round < 40; round++ {
		words := make([]string, 0, 30)
		for len(words) < 30 {
			n := 1 + rng.Intn(4)
			var sb strings.Builder
			for i := 0; i < n; i++ {
				sb.WriteByte(letters[rng.Intn(len(letters))])
			}
			words = append(words, sb.String())
		}
		idx := dictionary.New(words)

		for k := 0; k < 5; k++ {
			start := words[rng.Intn(len(words))]
			target := words[rng.Intn(len(words))]
			optimal, reachable := bfsMoves(idx, start, target)

			result, err := Solve(start, target, idx)
			if !reachable {
				assert.ErrorIs(t, err, ErrNoPathFound, "%s -> %s in %v", start, target, words)
				continue
			}
			require.NoError(t, err, "%s -> %s in %v", start, target, words)
			assertValidLadder(t, result.Words, result.Moves)
			assert.GreaterOrEqual(t, result.Moves, optimal)
			assert.Equal(t, start, result.Words[0])
			assert.Equal(t, target, result.Words[len(result.Words)-1])

			forward, err := Solve(start, target, idx, WithBidirectional(false))
			require.NoError(t, err)
			assert.Equal(t, optimal, forward.Moves, "forward A* is optimal")
			assertValidLadder(t, forward.Words, forward.Moves)
		}
	}
}

func TestSolve_Trace(t *testing.T) {
	idx := dictionary.New(chainWords)

	var buf bytes.Buffer
	logger := log.New(&buf)
	_, err := Run("cat", "pot", idx, WithTrace(2), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "expand")
	assert.Contains(t, buf.String(), "oat")

	buf.Reset()
	_, err = Run("cat", "pot", idx, WithLogger(logger))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "expand")
}

func TestMaterialize(t *testing.T) {
	idx := dictionary.New(chainWords)

	assert.Equal(t, []string{"tac", "at", "oat", "to", "opt"}, Materialize(idx, []int{0, 1, 2, 3, 4}, "tac", "opt"))
	assert.Equal(t, []string{"cat"}, Materialize(idx, []int{0}, "cat", "cat"))
	assert.Equal(t, []string{"top", "pot"}, Materialize(idx, []int{4}, "top", "pot"))
	assert.Nil(t, Materialize(idx, nil, "a", "b"))
}
