package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/yuzu-spa/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Start an HTTP server with the browser version of the spa.

The page talks to the server over a websocket at /ws; the simulation runs
server-side. The leaderboard is shared with the terminal version when both
use the same --db, and is also served as JSON at /api/leaderboard.

Examples:
  yuzuspa web
  yuzuspa web --addr :3000`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("yuzuspa-web", os.Stderr)
	defer closeLog()

	gameCfg := loadGameConfig()
	store, board := openBoard(gameCfg, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := web.Config{
		Address:  flagWebAddr,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Game:     gameCfg,
		Board:    board,
		Wisdom:   newWisdom(gameCfg, logger),
		Logger:   logger,
	}
	if store != nil {
		cfg.Runs = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving Yuzu Spa on http://localhost%s\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := web.NewServer(cfg).ListenAndServe(ctx); err != nil {
		logger.Error("web server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
