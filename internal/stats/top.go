// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/wordstat/internal/model"
)

// Compute sorts counts by descending count, breaking ties by word, keeps
// the first limit entries and derives each entry's share of the retained
// total. A negative limit keeps everything.
func Compute(counts model.WordCounts, limit int) model.Report {
	type item struct {
		word  string
		count int
	}
	items := make([]item, 0, len(counts))
	for word, count := range counts {
		items = append(items, item{word: word, count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count == items[j].count {
			return items[i].word < items[j].word
		}
		return items[i].count > items[j].count
	})
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	sum := 0
	for _, it := range items {
		sum += it.count
	}
	entries := make([]model.Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.Entry{
			Word:    it.word,
			Count:   it.count,
			Percent: float64(it.count) / float64(sum) * 100.0,
		})
	}
	return model.Report{Sum: sum, Entries: entries}
}
