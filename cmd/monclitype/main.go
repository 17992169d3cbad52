// Package main provides the CLI entrypoint for monclitype.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/monclitype/internal/config"
	"github.com/verte-zerg/monclitype/internal/generator"
	"github.com/verte-zerg/monclitype/internal/logging"
	"github.com/verte-zerg/monclitype/internal/model"
	"github.com/verte-zerg/monclitype/internal/session"
	"github.com/verte-zerg/monclitype/internal/stats"
	"github.com/verte-zerg/monclitype/internal/statsui"
	"github.com/verte-zerg/monclitype/internal/tui"
	"github.com/verte-zerg/monclitype/internal/wordlist"
)

const (
	defaultWords = 25
	defaultCaps  = 0.0
	defaultPunct = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	practiceDictionary string
	practiceWords      int
	practiceCaps       float64
	practicePunct      float64
	practicePunctSet   string
	practiceStats      bool
	practicePlain      bool

	logLevel string
	logFile  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "monclitype",
		Short:         "Terminal typing-speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVarP(&practiceDictionary, "dictionary", "d", "", "dictionary file, one word per line (default: XDG config dir)")
	rootCmd.Flags().IntVarP(&practiceWords, "words", "w", defaultWords, "words per phrase")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().BoolVar(&practiceStats, "stats", true, "show the statistics screen after the round")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "print statistics as plain text instead of the statistics screen")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path, '-' disables logging (default: XDG state dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDictsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "dictionary", &practiceDictionary, fileCfg.Practice.Dictionary)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyBoolConfig(cmd, "stats", &practiceStats, fileCfg.Practice.ShowStats)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		DictionaryPath: practiceDictionary,
		Words:          practiceWords,
		CapsPct:        practiceCaps,
		PunctPct:       practicePunct,
		PunctSet:       practicePunctSet,
		ShowStats:      practiceStats,
		Plain:          practicePlain,
	}
	if cfg.DictionaryPath == "" {
		cfg.DictionaryPath = config.DefaultDictionaryPath()
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logCfg := model.LogConfig{Level: logLevel, File: logFile}
	if logCfg.File == "" {
		logCfg.File = config.DefaultLogPath()
	}
	logger, closer, err := logging.Open(logCfg.File, logCfg.Level)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	words, err := wordlist.LoadWords(cfg.DictionaryPath)
	if err != nil {
		return dictionaryLoadError(cfg.DictionaryPath, err)
	}
	logger.Debug().Str("dictionary", cfg.DictionaryPath).Int("entries", len(words)).Msg("dictionary loaded")

	target := generator.New().Phrase(words, generator.Options{
		Words:    cfg.Words,
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal; monclitype needs an interactive terminal")
	}

	summary, err := playRound(target, logger)
	if err != nil {
		return err
	}
	return showSummary(cmd.OutOrStdout(), cfg, summary)
}

func playRound(target string, logger zerolog.Logger) (model.RoundSummary, error) {
	ctrl := session.New(target, session.WithLogger(logger))
	typing := tui.NewModel(ctrl)
	program := tea.NewProgram(typing, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return model.RoundSummary{}, fmt.Errorf("failed to run TUI: %w", err)
	}
	frame := typing.Frame()
	reason := frame.Reason
	if !frame.Finished() {
		// Program was stopped from outside the key loop, e.g. by a signal.
		reason = session.UserExit
	}
	return stats.Summarize(ctrl.ID(), ctrl.Events(), target, reason.String()), nil
}

func showSummary(w io.Writer, cfg model.Config, summary model.RoundSummary) error {
	if cfg.Plain {
		if err := stats.RenderSummary(w, summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		return nil
	}
	if !cfg.ShowStats {
		return nil
	}
	program := tea.NewProgram(statsui.NewModel(summary), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func loadFileConfig() (config.FileConfig, error) {
	if err := config.LoadDotEnv(".env", config.DefaultEnvPath()); err != nil {
		return config.FileConfig{}, err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(&fileCfg, os.LookupEnv); err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return fileCfg, nil
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
	path := config.DefaultConfigPath()
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

func newDictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List installed dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listDictionaries(cmd.OutOrStdout(), config.DefaultDictionaryDir())
		},
	}
}

func listDictionaries(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("No dictionaries found. Put one word per line in %s\n", filepath.Join(dir, "default.txt"))
			return fmt.Errorf("dictionary directory does not exist")
		}
		return fmt.Errorf("failed to read dictionary directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, filepath.Join(dir, entry.Name()))
	}
	if len(names) == 0 {
		logErrf("No dictionaries found. Put one word per line in %s\n", filepath.Join(dir, "default.txt"))
		return fmt.Errorf("no dictionaries found")
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# monclitype configuration
# Uncomment a value to enable it. Environment (MONCLITYPE_*) overrides this
# file and CLI flags override both.

[practice]
# dictionary = %q
# words = %d              # Words per phrase
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q          # Punctuation set
# show-stats = true       # Show the statistics screen after a round

[log]
# level = "info"          # debug, info, warn, error, disabled
# file = %q
`,
		config.DefaultDictionaryPath(),
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DictionaryPath == "" {
		return fmt.Errorf("--dictionary must not be empty")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if strings.ContainsAny(cfg.PunctSet, " \t\n") {
		return fmt.Errorf("--punct-set must not contain whitespace")
	}
	return nil
}

func dictionaryLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load dictionary: %v", err),
		fmt.Sprintf("expected dictionary at: %s", path),
		"Put one word per line in that file, or pass --dictionary <path>",
		"Run: monclitype dicts",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
