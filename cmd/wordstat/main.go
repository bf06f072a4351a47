// Package main provides the CLI entrypoint for wordstat.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/wordstat/internal/analyze"
	"github.com/verte-zerg/wordstat/internal/config"
	"github.com/verte-zerg/wordstat/internal/logging"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/stats"
	"github.com/verte-zerg/wordstat/internal/statsui"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const appName = "wordstat"

var (
	flagTop        int
	flagMinLen     int
	flagIgnore     []string
	flagConfigPath string
	flagVerbose    bool
	flagProgress   bool

	statsAligned bool

	chartWidth int
	chartColor bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Word frequency statistics for text files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagTop, "top", "t", 0, "limit the number of results (default: unlimited)")
	flags.IntVar(&flagMinLen, "min_len", model.DefaultMinWordLength, "minimum word length to consider")
	flags.StringArrayVarP(&flagIgnore, "ignore", "i", nil, "file with words to ignore, one per line (repeatable)")
	flags.StringVar(&flagConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/wordstat/config.toml)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.BoolVar(&flagProgress, "progress", false, "show a progress bar while reading files")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE...",
		Short: "Show word statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsAligned, "aligned", false, "print an aligned table with a header row")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	report, _, err := analyzeFiles(cmd, args)
	if err != nil {
		return err
	}
	if statsAligned {
		return writeOutput(stats.RenderTable(cmd.OutOrStdout(), report))
	}
	return writeOutput(stats.RenderStats(cmd.OutOrStdout(), report))
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words FILE...",
		Short: "Generate a list of words for word cloud tools",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, args []string) error {
	report, _, err := analyzeFiles(cmd, args)
	if err != nil {
		return err
	}
	return writeOutput(stats.RenderWords(cmd.OutOrStdout(), report))
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart FILE...",
		Short: "Draw a bar chart of word frequencies",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChartCmd,
	}
	cmd.Flags().IntVar(&chartWidth, "width", 0, "bar width in columns (default: fit terminal)")
	cmd.Flags().BoolVar(&chartColor, "color", false, "force coloured bars")
	return cmd
}

func runChartCmd(cmd *cobra.Command, args []string) error {
	report, fileCfg, err := analyzeFiles(cmd, args)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)
	applyBoolConfig(cmd, "color", &chartColor, fileCfg.Chart.Color)
	if chartWidth < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	return writeOutput(stats.RenderChart(cmd.OutOrStdout(), report, stats.ChartOptions{
		Width: chartWidth,
		Color: chartColor,
	}))
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE...",
		Short: "Browse word statistics interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBrowseCmd,
	}
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires an interactive terminal; use stats instead")
	}
	report, _, err := analyzeFiles(cmd, args)
	if err != nil {
		return err
	}
	program := tea.NewProgram(statsui.NewModel(report), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// analyzeFiles resolves options from flags and the config file, then runs
// the counting pipeline over files.
func analyzeFiles(cmd *cobra.Command, files []string) (model.Report, config.FileConfig, error) {
	logger, err := logging.New(flagVerbose, appName, Version)
	if err != nil {
		return model.Report{}, config.FileConfig{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer syncLogger(logger)

	path := configPath()
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Report{}, config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Resolved config file", zap.String("path", path))

	opts, err := resolveOptions(cmd, files, fileCfg)
	if err != nil {
		return model.Report{}, config.FileConfig{}, err
	}

	report, err := analyze.Run(opts, cmd.ErrOrStderr(), logger)
	if err != nil {
		return model.Report{}, config.FileConfig{}, err
	}
	return report, fileCfg, nil
}

func resolveOptions(cmd *cobra.Command, files []string, fileCfg config.FileConfig) (model.Options, error) {
	minLen := flagMinLen
	applyIntConfig(cmd, "min_len", &minLen, fileCfg.Analyze.MinLen)

	limit := model.Unlimited
	limited := false
	switch {
	case cmd.Flags().Changed("top"):
		limit, limited = flagTop, true
	case fileCfg.Analyze.Top != nil:
		limit, limited = *fileCfg.Analyze.Top, true
	}
	if limited && limit < 0 {
		return model.Options{}, fmt.Errorf("--top must be >= 0")
	}

	ignore := flagIgnore
	if !cmd.Flags().Changed("ignore") && len(fileCfg.Analyze.Ignore) > 0 {
		ignore = fileCfg.Analyze.Ignore
	}

	opts := model.Options{
		Files:         files,
		IgnoreFiles:   ignore,
		MinWordLength: minLen,
		Limit:         limit,
		Progress:      flagProgress,
	}
	if err := validateOptions(opts); err != nil {
		return model.Options{}, err
	}
	return opts, nil
}

func validateOptions(opts model.Options) error {
	if opts.MinWordLength < 0 {
		return fmt.Errorf("--min_len must be >= 0")
	}
	if len(opts.Files) == 0 {
		return fmt.Errorf("at least one file is required")
	}
	return nil
}

func configPath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.DefaultConfigPath()
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func writeOutput(err error) error {
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// syncLogger flushes buffered logs. Sync fails on terminals and pipes, so
// errors are only reported when stderr is a regular file.
func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil && isRegularFile(os.Stderr) {
		logErrf("failed to flush logs: %v\n", err)
	}
}

func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# top = 20                # Limit the number of results (default: unlimited)
# min-len = %d             # Minimum word length to consider
# ignore = []             # Files with words to ignore, used when no --ignore is given

[chart]
# width = 0               # Bar width in columns, 0 fits the terminal
# color = false           # Force coloured bars
`,
		model.DefaultMinWordLength,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
