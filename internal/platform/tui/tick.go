// Package tui provides the Bubble Tea frontend for Yuzu Spa.
// It handles the terminal UI loop, input mapping, and the game-over flow.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/yuzu-spa/internal/wisdom"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Each handled tick schedules at most one successor, so ticks never overlap.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// wisdomTimeout bounds a single wisdom request.
const wisdomTimeout = 30 * time.Second

// WisdomMsg carries fetched wisdom back to the model, tagged with the run
// it was requested for.
type WisdomMsg struct {
	Generation uint64
	Text       string
}

// fetchWisdomCmd requests wisdom for score outside the update loop.
func fetchWisdomCmd(f wisdom.Fetcher, generation uint64, score int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), wisdomTimeout)
		defer cancel()
		return WisdomMsg{Generation: generation, Text: f.Fetch(ctx, score)}
	}
}
