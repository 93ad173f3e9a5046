package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/ladder"
	"github.com/bastiangx/wordladder/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var words = []string{"cat", "at", "oat", "to", "top", "pot", "cart"}

func TestInputHandler_Session(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(dictionary.New(words), &out, 3, 0)

	input := strings.Join([]string{
		"cat pot",
		"",
		"just one",
		"cat",
		"cat catz",
		"cat 42",
	}, "\n")
	require.NoError(t, h.Start(strings.NewReader(input)))

	text := out.String()
	for _, w := range []string{"cat", "at", "oat", "to", "pot"} {
		assert.Contains(t, text, w)
	}
	assert.Contains(t, text, "4 moves")
	assert.Contains(t, text, "did you mean: cat")
	// "cat" alone is not a pair and is not counted.
	assert.Equal(t, 4, h.Requests())
}

func TestInputHandler_Options(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(dictionary.New(words), &out, 0, 0, ladder.WithMaxSteps(1))

	require.NoError(t, h.Start(strings.NewReader("cat pot\ncat xyz\n")))
	assert.NotContains(t, out.String(), "moves")
	assert.NotContains(t, out.String(), "did you mean")
}

func TestHint(t *testing.T) {
	m := suggest.NewMatcher(words)
	assert.Equal(t, "did you mean: cat?", Hint(m, "catz", 1))
	assert.Equal(t, "", Hint(m, "xyz", 3))
	assert.Equal(t, "", Hint(nil, "catz", 3))
	assert.Equal(t, "", Hint(m, "catz", 0))
}

func TestPrintLadder(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintLadder(&out, []string{"cat", "at"}))
	assert.Equal(t, "cat\nat\n", out.String())
}
