package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrLoad is the root of every dictionary loading failure.
var ErrLoad = errors.New("dictionary load failed")

// LoadError reports which file could not be loaded and why.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrLoad, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrLoad, e.Path, e.Err)
}

// Unwrap exposes both ErrLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// LoadFile detects the format of path and loads it into an Index.
func LoadFile(path string) (*Index, error) {
	start := time.Now()

	format, err := DetectFileFormat(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, &LoadError{Path: path, Err: statErr}
		}
		if hasKnownExtension(path) {
			return nil, &LoadError{Path: path, Err: err}
		}
		// Unknown extensions are still tried as plain text word lists.
		log.Debugf("Unknown format for %s, reading as text", path)
		format = FormatText
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	var words []string
	switch format {
	case FormatBinary:
		words, err = readBinary(bufio.NewReader(file))
	default:
		words, err = readText(file)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(words) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("no words found")}
	}

	idx := New(words)
	log.Debugf("Loaded %d words from %s in %v", len(words), path, time.Since(start))
	return idx, nil
}

// LoadText reads a plain text word list, one word per line.
func LoadText(r io.Reader) (*Index, error) {
	words, err := readText(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return New(words), nil
}

// LoadBinary reads a compiled word list written by WriteBinary.
func LoadBinary(r io.Reader) (*Index, error) {
	words, err := readBinary(bufio.NewReader(r))
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return New(words), nil
}

// readText keeps each line's spelling as is, minus surrounding whitespace.
// Blank lines are not words and are skipped.
func readText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	skipped := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			skipped++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if skipped > 0 {
		log.Debugf("Skipped %d blank lines", skipped)
	}
	return words, nil
}

// readBinary decodes the compiled layout: an int32 word count, then for each
// word a uint16 length followed by its bytes, all little endian.
func readBinary(reader *bufio.Reader) ([]string, error) {
	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if totalEntries < 0 || totalEntries > maxBinaryWords {
		return nil, fmt.Errorf("invalid word count %d", totalEntries)
	}

	words := make([]string, 0, totalEntries)
	for len(words) < int(totalEntries) {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			return nil, fmt.Errorf("failed to read word length at entry %d: %w", len(words), err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word at entry %d: %w", len(words), err)
		}
		words = append(words, string(wordBytes))
	}
	return words, nil
}

// WriteBinary compiles idx into the binary layout read by LoadBinary.
func WriteBinary(w io.Writer, idx *Index) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(idx.Len())); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < idx.Len(); i++ {
		word := idx.Word(i)
		if len(word) > int(^uint16(0)) {
			return fmt.Errorf("word at entry %d is too long (%d bytes)", i, len(word))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := bw.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return bw.Flush()
}

// CompileFile writes idx to path in the binary layout.
func CompileFile(idx *Index, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteBinary(file, idx); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Debugf("Compiled %d words into %s", idx.Len(), path)
	return nil
}
