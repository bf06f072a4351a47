// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/verte-zerg/wordstat/internal/model"
)

const (
	barRune             = "█"
	minBarWidth         = 10
	percentLabelWidth   = len("100.00%")
	terminalWidthBackup = 80
)

// ChartOptions controls RenderChart.
type ChartOptions struct {
	// Width is the length of the longest bar. Zero sizes bars to the terminal.
	Width int
	// Color forces coloured bars even when w is not a terminal.
	Color bool
}

// RenderChart prints a horizontal bar per entry, scaled to the most
// frequent word.
func RenderChart(w io.Writer, report model.Report, opts ChartOptions) error {
	if len(report.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}

	labelWidth := 0
	maxCount := 0
	for _, e := range report.Entries {
		if lw := displayWidth(e.Word); lw > labelWidth {
			labelWidth = lw
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	width := opts.Width
	if width <= 0 {
		width = autoBarWidth(labelWidth)
	}

	renderer := lipgloss.NewRenderer(w)
	if shouldUseColor(w, opts.Color) {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	barStyle := renderer.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

	for _, e := range report.Entries {
		n := int(math.Round(float64(e.Count) / float64(maxCount) * float64(width)))
		bar := strings.Repeat(barRune, n) + strings.Repeat(" ", width-n)
		line := fmt.Sprintf("%s %s %*.2f%%",
			padCell(e.Word, labelWidth, false),
			barStyle.Render(bar),
			percentLabelWidth-1,
			e.Percent,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func autoBarWidth(labelWidth int) int {
	width := terminalWidth() - labelWidth - percentLabelWidth - 2
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
