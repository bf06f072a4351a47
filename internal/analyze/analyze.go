// Package analyze runs the word counting pipeline.
package analyze

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/verte-zerg/wordstat/internal/logging"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/source"
	"github.com/verte-zerg/wordstat/internal/stats"
	"github.com/verte-zerg/wordstat/internal/tokenize"
	"github.com/verte-zerg/wordstat/internal/wordlist"
)

// Count tallies the words accepted by keep. A nil keep accepts every word.
func Count(words []string, keep wordlist.FilterFunc) model.WordCounts {
	if keep == nil {
		keep = wordlist.AcceptAll
	}
	counts := model.WordCounts{}
	for _, word := range words {
		if keep(word) {
			counts[word]++
		}
	}
	return counts
}

// CountTexts tokenizes texts in order and counts the surviving words.
func CountTexts(texts []string, minLen int, ignore wordlist.IgnoreSet) model.WordCounts {
	return Count(tokenize.SplitAll(texts), wordlist.NewFilter(minLen, ignore))
}

// Run loads ignore lists, reads and counts every input file and computes
// the report. Progress, when non-nil, receives a file-read progress bar.
func Run(opts model.Options, progress io.Writer, logger *zap.Logger) (model.Report, error) {
	logger = logging.OrNop(logger)

	ignore, err := wordlist.LoadIgnoreSet(opts.IgnoreFiles...)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to load ignore list: %w", err)
	}
	logger.Debug("Loaded ignore lists",
		zap.Strings("files", opts.IgnoreFiles),
		zap.Int("words", ignore.Len()))

	readOpts := source.ReadOptions{}
	if opts.Progress {
		readOpts.Progress = progress
	}
	texts, err := source.ReadFiles(opts.Files, readOpts)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to read input: %w", err)
	}
	for i, text := range texts {
		logger.Debug("Read input file", zap.String("path", opts.Files[i]), zap.Int("bytes", len(text)))
	}

	counts := CountTexts(texts, opts.MinWordLength, ignore)
	logger.Debug("Counted words", zap.Int("distinct", len(counts)))

	report := stats.Compute(counts, opts.Limit)
	logger.Debug("Computed report", zap.Int("entries", len(report.Entries)), zap.Int("sum", report.Sum))
	return report, nil
}
