// Package wordlist provides word filtering and ignore list loading.
package wordlist

import (
	"math/big"
	"unicode/utf8"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// AcceptAll keeps every word.
func AcceptAll(string) bool { return true }

// NewFilter keeps words that are at least minLen characters long, are not
// unsigned 128-bit integers and are absent from ignore.
func NewFilter(minLen int, ignore IgnoreSet) FilterFunc {
	return func(word string) bool {
		if utf8.RuneCountInString(word) < minLen {
			return false
		}
		if IsNumeric(word) {
			return false
		}
		return !ignore.Contains(word)
	}
}

// IsNumeric reports whether word is a decimal number that fits in an
// unsigned 128-bit integer. Longer digit strings count as ordinary words.
func IsNumeric(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	n, ok := new(big.Int).SetString(word, 10)
	return ok && n.BitLen() <= 128
}
