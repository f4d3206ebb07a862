package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var wisdomCmd = &cobra.Command{
	Use:   "wisdom <score>",
	Short: "Ask the Capy Elder about a score",
	Long: `Fetch one piece of wisdom for the given score and print it.

Useful for checking that the API key works. Without a key the offline
fallback is printed.

Examples:
  yuzuspa wisdom 120
  GEMINI_API_KEY=... yuzuspa wisdom 300`,
	Args: cobra.ExactArgs(1),
	Run:  runWisdom,
}

func runWisdom(cmd *cobra.Command, args []string) {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		fail("invalid score %q", args[0])
	}

	logger, closeLog := newLogger("yuzuspa", os.Stderr)
	defer closeLog()

	client := newWisdom(loadGameConfig(), logger)
	if !client.HasKey() {
		logger.Warn("no API key configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Println(client.Fetch(ctx, score))
}
