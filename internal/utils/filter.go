package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptyWord   = errors.New("empty word")
	ErrNoLetters   = errors.New("word has no letters a-z")
	ErrWordTooLong = errors.New("word too long")
)

// HasLetters reports whether s holds at least one ASCII letter, the only
// runes a ladder search counts.
func HasLetters(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsOnlyNumbers reports whether s is a non-empty run of digits.
func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateWord checks a ladder endpoint typed by a user. maxLen <= 0 means no
// length limit.
func ValidateWord(word string, maxLen int) error {
	word = strings.TrimSpace(word)
	switch {
	case word == "":
		return ErrEmptyWord
	case maxLen > 0 && utf8.RuneCountInString(word) > maxLen:
		return fmt.Errorf("%w: %d runes, limit %d", ErrWordTooLong, utf8.RuneCountInString(word), maxLen)
	case IsOnlyNumbers(word), !HasLetters(word):
		return fmt.Errorf("%w: %q", ErrNoLetters, word)
	}
	return nil
}
