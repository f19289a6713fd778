package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDictionaryLengthFilter(t *testing.T) {
	input := strings.Join([]string{
		"אבגדהוזחטי",      // 10, kept
		"אבג",             // 3, dropped
		"אבגדהוזחטיכלמ",   // 13, kept
		"אבגדהוזחטיכלמנ",  // 14, dropped
		"  אבגדהוזחטיכ  ", // 11 after trim, kept
	}, "\n")

	d, err := ParseDictionary(strings.NewReader(input), 10, 13)
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}

	want := []string{"אבגדהוזחטי", "אבגדהוזחטיכלמ", "אבגדהוזחטיכ"}
	if len(d.Words) != len(want) {
		t.Fatalf("Expected %d words, got %d: %v", len(want), len(d.Words), d.Words)
	}
	for i := range want {
		if d.Words[i] != want[i] {
			t.Errorf("word %d: expected %q, got %q", i, want[i], d.Words[i])
		}
	}
}

func TestParseDictionarySkipsCommentsAndDuplicates(t *testing.T) {
	input := "# header\n\nשלום\n// note\nשלום\nעולם\n"

	d, err := ParseDictionary(strings.NewReader(input), 4, 4)
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	if len(d.Words) != 2 || d.Words[0] != "שלום" || d.Words[1] != "עולם" {
		t.Errorf("Unexpected words %v", d.Words)
	}
}

// TestParseDictionaryNormalizes verifies decomposed input is stored composed
func TestParseDictionaryNormalizes(t *testing.T) {
	decomposed := "e\u0301tude"
	d, err := ParseDictionary(strings.NewReader(decomposed), 1, 10)
	if err != nil {
		t.Fatalf("ParseDictionary failed: %v", err)
	}
	if d.Words[0] != "\u00e9tude" {
		t.Errorf("Expected NFC form, got %q", d.Words[0])
	}
}

func TestParseDictionaryEmpty(t *testing.T) {
	_, err := ParseDictionary(strings.NewReader("short\nwords\n"), 10, 13)
	if !errors.Is(err, ErrDictionaryEmpty) {
		t.Errorf("Expected ErrDictionaryEmpty, got %v", err)
	}
}

func TestLoadDictionaryMissing(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.txt"), 10, 13)
	if !errors.Is(err, ErrDictionaryMissing) {
		t.Errorf("Expected ErrDictionaryMissing, got %v", err)
	}
}

func TestLoadDictionaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("אבגדהוזחטי\nקצר\n"), 0644); err != nil {
		t.Fatalf("Failed to write dictionary: %v", err)
	}

	d, err := LoadDictionary(path, 10, 13)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	if len(d.Words) != 1 {
		t.Errorf("Expected 1 word, got %v", d.Words)
	}
	if d.MinLen != 10 || d.MaxLen != 13 {
		t.Errorf("Expected bounds [10,13], got [%d,%d]", d.MinLen, d.MaxLen)
	}
}

func TestLoadDictionaryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write dictionary: %v", err)
	}
	_, err := LoadDictionary(path, 10, 13)
	if !errors.Is(err, ErrDictionaryEmpty) {
		t.Errorf("Expected ErrDictionaryEmpty, got %v", err)
	}
}
