package content

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrDictionaryMissing is returned when the dictionary file does not exist
	ErrDictionaryMissing = errors.New("dictionary file missing")

	// ErrDictionaryEmpty is returned when no entry survives length filtering
	ErrDictionaryEmpty = errors.New("no words in the configured length range")
)

// CommentPrefixes defines the prefixes that identify comment lines
var CommentPrefixes = []string{"//", "#"}

// Dictionary is the filtered, ordered word list used for detection
// Order is file order and defines match precedence
type Dictionary struct {
	Words  []string
	MinLen int
	MaxLen int
}

// LoadDictionary reads a newline-delimited word list from path
// Entries are kept only when their character count lies within [minLen, maxLen]
func LoadDictionary(path string, minLen, maxLen int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryMissing, path)
		}
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	d, err := ParseDictionary(f, minLen, maxLen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d dictionary word(s) from %s", len(d.Words), path)
	return d, nil
}

// ParseDictionary filters words from r
// Lines are trimmed and NFC-normalized; blanks, comments and duplicates are skipped
func ParseDictionary(r io.Reader, minLen, maxLen int) (*Dictionary, error) {
	d := &Dictionary{MinLen: minLen, MaxLen: maxLen}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	skipped := 0
	for scanner.Scan() {
		word := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if word == "" || isCommentLine(word) {
			continue
		}
		n := utf8.RuneCountInString(word)
		if n < minLen || n > maxLen {
			skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		d.Words = append(d.Words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	if skipped > 0 {
		log.Printf("Skipped %d dictionary line(s) outside length range [%d, %d]", skipped, minLen, maxLen)
	}
	if len(d.Words) == 0 {
		return nil, ErrDictionaryEmpty
	}
	return d, nil
}

// isCommentLine checks if a trimmed line starts with any comment prefix
func isCommentLine(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
