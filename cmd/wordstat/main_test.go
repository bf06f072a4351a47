package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordstat/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsTopTwo(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "The cat sat on the mat. The cat ran.")

	out, err := runCLI(t, "stats", "--min_len", "3", "--top", "2", input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	want := "Total words: 4\nThe\t2\t50.00\ncat\t2\t50.00\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
}

func TestGlobalFlagsBeforeSubcommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "cat cat cat dog")

	out, err := runCLI(t, "-t", "1", "words", input)
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}
	if out != "cat\ncat\ncat\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestStatsIgnoreRepeatable(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "The cat sat on the mat. The cat ran.")
	a := writeFile(t, dir, "a.txt", "the\n")
	b := writeFile(t, dir, "b.txt", "  The  \n")

	out, err := runCLI(t, "stats", "-i", a, "--ignore", b, input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.HasPrefix(out, "Total words: 5\ncat\t2\t40.00\n") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "The\t") || strings.Contains(out, "the\t") {
		t.Fatalf("expected the/The to be ignored: %q", out)
	}
}

func TestStatsMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "stats", filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestStatsRequiresFile(t *testing.T) {
	if _, err := runCLI(t, "stats"); err == nil {
		t.Fatalf("expected error without files")
	}
}

func TestStatsRejectsNegativeTop(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "cat")
	_, err := runCLI(t, "stats", "--top", "-1", input)
	if err == nil || !strings.Contains(err.Error(), "--top") {
		t.Fatalf("expected --top validation error, got %v", err)
	}
}

func TestStatsUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "ab ab abc abc abc abcd")
	cfgPath := writeFile(t, dir, "config.toml", "[analyze]\ntop = 1\nmin-len = 2\n")

	out, err := runCLI(t, "--config", cfgPath, "stats", input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if out != "Total words: 3\nabc\t3\t100.00\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = runCLI(t, "--config", cfgPath, "--top", "2", "--min_len", "3", "stats", input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if out != "Total words: 4\nabc\t3\t75.00\nabcd\t1\t25.00\n" {
		t.Fatalf("flags should override config, got: %q", out)
	}
}

func TestStatsAligned(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "cat cat dog")

	out, err := runCLI(t, "stats", "--aligned", input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Word Count Percent") || !strings.Contains(out, "cat      2  66.67%") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestChart(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.txt", "cat cat dog")

	out, err := runCLI(t, "chart", "--width", "4", input)
	if err != nil {
		t.Fatalf("chart failed: %v", err)
	}
	if !strings.Contains(out, "cat ████  66.67%") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordstat", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensureConfigFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[analyze]") {
		t.Fatalf("unexpected template: %s", data)
	}
}

func TestValidateOptions(t *testing.T) {
	base := model.Options{Files: []string{"a"}, MinWordLength: 3, Limit: model.Unlimited}
	if err := validateOptions(base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := base
	bad.MinWordLength = -1
	if err := validateOptions(bad); err == nil {
		t.Fatalf("expected min_len error")
	}
}
