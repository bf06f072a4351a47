// Package wordlist provides word filtering and ignore list loading.
package wordlist

import (
	"strings"

	"github.com/verte-zerg/wordstat/internal/source"
)

// IgnoreSet holds words excluded from counting. Matching is exact and
// case-sensitive.
type IgnoreSet map[string]struct{}

// Contains reports whether word is ignored. A nil set ignores nothing.
func (s IgnoreSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of ignored words.
func (s IgnoreSet) Len() int {
	return len(s)
}

// LoadIgnoreSet reads one word per line from every path. Lines are trimmed
// and blank lines skipped. The first unreadable file aborts loading.
func LoadIgnoreSet(paths ...string) (IgnoreSet, error) {
	set := IgnoreSet{}
	for _, path := range paths {
		text, err := source.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			set[line] = struct{}{}
		}
	}
	return set, nil
}
