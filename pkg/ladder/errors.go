package ladder

import (
	"errors"
	"fmt"
)

var (
	// ErrWordNotInDictionary means an endpoint is not even an anagram of a
	// dictionary word, so no search is attempted.
	ErrWordNotInDictionary = errors.New("word not in dictionary")

	// ErrNoPathFound means a search frontier ran empty: the words are in
	// different components of the ladder graph.
	ErrNoPathFound = errors.New("no ladder exists between the words")

	// ErrAborted means the step budget ran out before the search finished.
	// Whether a ladder exists is unknown.
	ErrAborted = errors.New("search aborted")
)

// WordNotFoundError names the endpoint that failed the dictionary check.
type WordNotFoundError struct {
	Word string
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("%q: %v", e.Word, ErrWordNotInDictionary)
}

func (e *WordNotFoundError) Unwrap() error {
	return ErrWordNotInDictionary
}

func abortedAfter(steps int) error {
	return fmt.Errorf("%w after %d steps", ErrAborted, steps)
}

// outcome labels an error for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, ErrWordNotInDictionary):
		return "not_in_dictionary"
	case errors.Is(err, ErrNoPathFound):
		return "no_path"
	case errors.Is(err, ErrAborted):
		return "aborted"
	default:
		return "error"
	}
}
