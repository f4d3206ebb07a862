package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/yuzu-spa/internal/core"
	"github.com/vovakirdan/yuzu-spa/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a spa session in the terminal.

Controls:
  Left/Right, A/D  - Move the capybara
  Mouse            - Steer by pointer
  Enter/Space      - Start
  R                - Play again (after game over)
  Tab              - Toggle leaderboard
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C/Esc     - Quit

Examples:
  yuzuspa play
  yuzuspa play --fps 30
  yuzuspa play --config ./my-spa.yaml
  yuzuspa play --log-file spa.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns stdout, so logs only go to --log-file
	logger, closeLog := newLogger("yuzuspa", io.Discard)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameCfg := loadGameConfig()
	store, board := openBoard(gameCfg, logger)

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Board:  board,
		Wisdom: newWisdom(gameCfg, logger),
		Logger: logger,
	}
	if store != nil {
		opts.Runs = store
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
