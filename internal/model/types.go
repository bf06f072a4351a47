// Package model defines shared data structures.
package model

// Unlimited disables top-N truncation.
const Unlimited = -1

// DefaultMinWordLength is used when no minimum length is configured.
const DefaultMinWordLength = 3

// Options is the resolved, immutable configuration of one analysis run.
type Options struct {
	Files         []string
	IgnoreFiles   []string
	MinWordLength int
	// Limit keeps at most Limit entries; any negative value means no limit.
	Limit    int
	Progress bool
}

// WordCounts maps a word to its number of occurrences.
type WordCounts map[string]int

// Entry is a single row of a statistics report.
type Entry struct {
	Word    string
	Count   int
	Percent float64
}

// Report is the sorted, possibly truncated, result of an analysis.
// Sum covers the retained entries only.
type Report struct {
	Sum     int
	Entries []Entry
}
