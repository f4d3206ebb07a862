// yuzuspa is Capy's Yuzu Spa: catch falling yuzus and cats, dodge the rain.
//
// Usage:
//
//	yuzuspa play             - Play in the terminal
//	yuzuspa scores           - Show the leaderboard
//	yuzuspa serve            - Start SSH server for remote play
//	yuzuspa web              - Serve the browser version
//	yuzuspa wisdom <score>   - Ask the Capy Elder once
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.yuzuspa/yuzuspa.db)
//	--config <path>     - Custom game config YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/yuzu-spa/internal/config"
	"github.com/vovakirdan/yuzu-spa/internal/leaderboard"
	"github.com/vovakirdan/yuzu-spa/internal/storage"
	"github.com/vovakirdan/yuzu-spa/internal/wisdom"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yuzuspa",
	Short: "Capy's Yuzu Spa - a relaxing catch game",
	Long: `Capy's Yuzu Spa: a capybara soaks in a hot spring while yuzus, cats
and rain clouds fall from the sky. Catch yuzus and cats, dodge the rain.

Available commands:
  play     - Play in the terminal
  scores   - View the leaderboard and run history
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  wisdom   - Ask the Capy Elder for wisdom about a score

The Capy Elder needs a Gemini API key in GEMINI_API_KEY, API_KEY or
VITE_GEMINI_API_KEY. A .env file in the working directory is loaded first.

Examples:
  yuzuspa play
  yuzuspa play --seed 42
  yuzuspa scores --history
  yuzuspa serve --ssh :2222
  yuzuspa web --addr :8080`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is the common case
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.yuzuspa/yuzuspa.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(wisdomCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. fallback is used when --log-file is
// not set. The returned closer releases the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid log level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, closer
}

// loadGameConfig loads tuning, keeping the defaults when a discovered file
// is broken. An explicit --config that fails to load is fatal.
func loadGameConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// newWisdom builds the Gemini client from tuning and the environment.
func newWisdom(cfg config.GameConfig, logger *log.Logger) *wisdom.Client {
	return wisdom.New(wisdom.Options{
		Endpoint: cfg.Wisdom.Endpoint,
		Model:    cfg.Wisdom.Model,
		APIKey:   wisdom.APIKeyFromEnv(),
		Logger:   logger,
	})
}

// openBoard opens the scores database and loads the leaderboard.
// Without a database the board lives in memory and store is nil.
func openBoard(cfg config.GameConfig, logger *log.Logger) (*storage.Store, *leaderboard.Manager) {
	var kv leaderboard.KV
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		kv = storage.NewMemory(nil)
	} else {
		kv = store
	}

	board := leaderboard.NewManager(kv, cfg.Leaderboard.Capacity, logger)
	if err := board.Load(time.Now()); err != nil {
		logger.Warn("could not load leaderboard", "error", err)
	}
	return store, board
}
