// Package cli handles the interactive mode: one "start target" pair per line,
// answered with a numbered ladder.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordladder/internal/utils"
	"github.com/bastiangx/wordladder/pkg/dictionary"
	"github.com/bastiangx/wordladder/pkg/ladder"
	"github.com/bastiangx/wordladder/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	rungStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	endStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#907aa9", Dark: "#c4a7e7"})
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// InputHandler reads word pairs and prints their ladders.
type InputHandler struct {
	index        *dictionary.Index
	matcher      *suggest.Matcher
	options      []ladder.Option
	suggestions  int
	maxWordLen   int
	out          io.Writer
	requestCount int
}

// NewInputHandler prepares an interactive session over idx. suggestions is
// the number of "did you mean" candidates shown for unknown words; options
// are passed to every search.
func NewInputHandler(idx *dictionary.Index, out io.Writer, suggestions, maxWordLen int, options ...ladder.Option) *InputHandler {
	h := &InputHandler{
		index:       idx,
		options:     options,
		suggestions: suggestions,
		maxWordLen:  maxWordLen,
		out:         out,
	}
	if suggestions > 0 {
		h.matcher = suggest.NewMatcher(idx.Words())
	}
	return h
}

// Start runs the input loop until r is exhausted.
func (h *InputHandler) Start(r io.Reader) error {
	log.Print("WordLadder CLI")
	log.Print("type two words and press Enter to see the ladder (Ctrl+D to exit):")

	scanner := bufio.NewScanner(r)
	for {
		log.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// Requests returns the number of pairs handled.
func (h *InputHandler) Requests() int { return h.requestCount }

func (h *InputHandler) handleInput(line string) {
	start, target, ok := utils.SplitPair(line)
	if !ok {
		log.Errorf("Expected two words, got: %q", line)
		return
	}
	h.requestCount++

	for _, word := range []string{start, target} {
		if err := utils.ValidateWord(word, h.maxWordLen); err != nil {
			log.Errorf("Invalid word: %v", err)
			return
		}
	}

	began := time.Now()
	result, err := ladder.Solve(start, target, h.index, h.options...)
	log.Debugf("Took [ %v ] for %s -> %s", time.Since(began), start, target)
	if err != nil {
		h.reportError(err)
		return
	}

	fmt.Fprintln(h.out, dimStyle.Render(fmt.Sprintf("%d moves, %d steps", result.Moves, result.Steps)))
	for i, word := range result.Words {
		style := rungStyle
		if i == 0 || i == len(result.Words)-1 {
			style = endStyle
		}
		fmt.Fprintf(h.out, "%3d. %s\n", i, style.Render(word))
	}
}

func (h *InputHandler) reportError(err error) {
	var notFound *ladder.WordNotFoundError
	if errors.As(err, &notFound) {
		log.Errorf("%v", err)
		if hint := Hint(h.matcher, notFound.Word, h.suggestions); hint != "" {
			fmt.Fprintln(h.out, hint)
		}
		return
	}
	log.Errorf("%v", err)
}

// Hint returns a "did you mean" line for a word that is not in the
// dictionary, or "" when nothing is close.
func Hint(matcher *suggest.Matcher, word string, limit int) string {
	if matcher == nil || limit <= 0 {
		return ""
	}
	candidates := matcher.Suggest(word, limit)
	if len(candidates) == 0 {
		return ""
	}
	return "did you mean: " + strings.Join(candidates, ", ") + "?"
}

// PrintLadder writes one word per line, unstyled, for piping.
func PrintLadder(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
