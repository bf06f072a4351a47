// Package stats contains statistics calculations and reporting.
package stats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/verte-zerg/wordstat/internal/model"
)

// RenderStats prints the total followed by one tab-separated line per entry.
func RenderStats(w io.Writer, report model.Report) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "Total words: %d\n", report.Sum); err != nil {
		return err
	}
	for _, e := range report.Entries {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%.2f\n", e.Word, e.Count, e.Percent); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderWords prints every word once per occurrence, one per line.
func RenderWords(w io.Writer, report model.Report) error {
	bw := bufio.NewWriter(w)
	for _, e := range report.Entries {
		for i := 0; i < e.Count; i++ {
			if _, err := bw.WriteString(e.Word + "\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// RenderTable prints the report as an aligned table with a header row.
func RenderTable(w io.Writer, report model.Report) error {
	if _, err := fmt.Fprintf(w, "Total words: %d\n", report.Sum); err != nil {
		return err
	}
	if len(report.Entries) == 0 {
		return nil
	}
	headers := []string{"Word", "Count", "Percent"}
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{
			e.Word,
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("%.2f%%", e.Percent),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
