package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/wordstat/internal/model"
)

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	report := Compute(sampleCounts(), 2)
	if err := RenderStats(&buf, report); err != nil {
		t.Fatalf("RenderStats failed: %v", err)
	}
	want := "Total words: 4\nThe\t2\t50.00\ncat\t2\t50.00\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderStats(&buf, model.Report{}); err != nil {
		t.Fatalf("RenderStats failed: %v", err)
	}
	if buf.String() != "Total words: 0\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderWordsRepeatsConsecutively(t *testing.T) {
	var buf bytes.Buffer
	report := model.Report{Sum: 4, Entries: []model.Entry{
		{Word: "cat", Count: 3, Percent: 75},
		{Word: "dog", Count: 1, Percent: 25},
	}}
	if err := RenderWords(&buf, report); err != nil {
		t.Fatalf("RenderWords failed: %v", err)
	}
	if buf.String() != "cat\ncat\ncat\ndog\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderTableAligns(t *testing.T) {
	var buf bytes.Buffer
	report := model.Report{Sum: 12, Entries: []model.Entry{
		{Word: "elephant", Count: 9, Percent: 75},
		{Word: "東京", Count: 3, Percent: 25},
	}}
	if err := RenderTable(&buf, report); err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Total words: 12" {
		t.Fatalf("unexpected total line: %q", lines[0])
	}
	if lines[1] != "Word     Count Percent" {
		t.Fatalf("unexpected header line: %q", lines[1])
	}
	if lines[2] != "elephant     9  75.00%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "東京         3  25.00%" {
		t.Fatalf("unexpected row line: %q", lines[3])
	}
}
