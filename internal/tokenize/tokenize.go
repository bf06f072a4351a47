// Package tokenize splits raw text into candidate words.
package tokenize

import (
	"strings"
	"unicode"
)

// Separators lists every character that ends a word besides whitespace.
const Separators = `*.,{}()[]:;?'"<>\/=+-@!|#&%$`

// IsBoundary reports whether r terminates a word.
func IsBoundary(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(Separators, r)
}

// Split returns the words of text in order of appearance. Runs of
// boundaries never yield empty words.
func Split(text string) []string {
	return strings.FieldsFunc(text, IsBoundary)
}

// SplitAll tokenizes each text in turn and concatenates the results.
func SplitAll(texts []string) []string {
	var words []string
	for _, text := range texts {
		words = append(words, Split(text)...)
	}
	return words
}
