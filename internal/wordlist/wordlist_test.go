package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordstat/internal/source"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadIgnoreSetTrimsAndSkipsBlank(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "ignore.txt", "  hello  \n\t\n   \nworld\r\n")

	set, err := LoadIgnoreSet(path)
	if err != nil {
		t.Fatalf("LoadIgnoreSet failed: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 words, got %d: %v", set.Len(), set)
	}
	if !set.Contains("hello") || !set.Contains("world") {
		t.Fatalf("unexpected set: %v", set)
	}
}

func TestLoadIgnoreSetUnionsFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeList(t, dir, "a.txt", "the\nThe\n")
	b := writeList(t, dir, "b.txt", "and\nthe\n")

	set, err := LoadIgnoreSet(a, b)
	if err != nil {
		t.Fatalf("LoadIgnoreSet failed: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", set.Len())
	}
	for _, word := range []string{"the", "The", "and"} {
		if !set.Contains(word) {
			t.Fatalf("expected %q in set", word)
		}
	}
}

func TestLoadIgnoreSetNoFiles(t *testing.T) {
	set, err := LoadIgnoreSet()
	if err != nil {
		t.Fatalf("LoadIgnoreSet failed: %v", err)
	}
	if set.Len() != 0 {
		t.Fatalf("expected empty set, got %v", set)
	}
}

func TestLoadIgnoreSetMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeList(t, dir, "ok.txt", "word\n")
	missing := filepath.Join(dir, "missing.txt")

	if _, err := LoadIgnoreSet(ok, missing); err == nil {
		t.Fatalf("expected error for missing ignore file")
	} else {
		var readErr *source.FileReadError
		if !errors.As(err, &readErr) || readErr.Path != missing {
			t.Fatalf("expected FileReadError for %s, got %v", missing, err)
		}
	}
}
