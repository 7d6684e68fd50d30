// wordfind is a word-search puzzle game for the terminal.
//
// Usage:
//
//	wordfind play [words...]   - Play a puzzle from a pack, a saved list or the given words
//	wordfind print [words...]  - Print a puzzle and its solution
//	wordfind menu              - Pick a word list interactively
//	wordfind packs             - List available word packs
//	wordfind lists             - Manage saved word lists
//	wordfind scores [list]     - Show best times
//	wordfind serve             - Start SSH server for remote play
//	wordfind config            - Show or initialize the configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.wordfind/configs, ./configs)
//	--lang <tag>        - Interface language (en, fr)
//	--db <path>         - Database path (default: ~/.wordfind/wordfind.db)
//	--log-level <level> - debug, info, warn, error
//	--seed <value>      - RNG seed for reproducible grids
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordfind/internal/config"
	"github.com/vovakirdan/tui-wordfind/internal/packs"
	"github.com/vovakirdan/tui-wordfind/internal/storage"
)

// interactiveAnnotation marks commands that draw a full-screen TUI; their
// logs go to the log file instead of stderr.
const interactiveAnnotation = "interactive"

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLang     string
	flagDBPath   string
	flagLogLevel string

	appCfg    config.Config
	logger    *log.Logger
	closeLogs = func() {}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfind",
	Short: "Word Find - Word-search puzzles in your terminal",
	Long: `Word Find builds word-search puzzles and lets you solve them in your
terminal with the mouse or the keyboard.

Available commands:
  play     - Solve a puzzle
  print    - Print a puzzle and its solution
  menu     - Interactive word list picker
  packs    - Show built-in word packs
  lists    - Manage saved word lists
  scores   - View best times
  serve    - Start SSH server for remote play
  config   - Show or initialize the configuration

Examples:
  wordfind play --pack animals
  wordfind play tiger zebra otter
  wordfind print --pack demo --seed 42
  wordfind lists save pets cat dog hamster
  wordfind serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogs() },
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Interface language (en, fr)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the word list and results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration, creates the logger and registers user
// packs from ~/.wordfind/packs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	appCfg = cfg

	_, interactive := cmd.Annotations[interactiveAnnotation]
	logger, closeLogs = newLogger(cfg.Log, interactive)

	if dir := config.UserDir(); dir != "" {
		ids, err := packs.LoadDir(filepath.Join(dir, "packs"))
		if err != nil {
			logger.Warn("could not load user packs", "dir", dir, "error", err)
		} else if len(ids) > 0 {
			logger.Debug("loaded user packs", "ids", ids)
		}
	}
	return nil
}

// newLogger creates the application logger. Interactive commands log to the
// configured file so output does not corrupt the TUI.
func newLogger(lc config.LogConfig, interactive bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if interactive {
		w = io.Discard
		if path := config.ExpandHome(lc.File); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordfind",
	})

	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.WarnLevel
		l.SetLevel(level)
		l.Warn("unknown log level, using warn", "level", lc.Level)
		return l, closeFn
	}
	l.SetLevel(level)
	return l, closeFn
}

// openStore opens the database. The game still works without it, so a
// failure is only logged.
func openStore() *storage.Store {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open database", "path", appCfg.Storage.Path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database for commands that cannot work without it.
func mustOpenStore() (*storage.Store, error) {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	return store, nil
}
