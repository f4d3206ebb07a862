package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
)

// capyArt is the title-screen capybara.
const capyArt = `      ▄▄▄▄▄▄▄
   ▄▄█ ●   ● █▄
  █▀    ▄▄    ▀█
  ▀█▄▄▄▄▄▄▄▄▄▄█▀`

var (
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("223")).Padding(1, 3).Align(lipgloss.Center)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	artStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("130"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	recordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	wisdomStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")).Width(44).Align(lipgloss.Center)
)

// titleView renders the start screen.
func (m Model) titleView(snap capyspa.Snapshot) string {
	var b strings.Builder

	b.WriteString(artStyle.Render(capyArt))
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Capy's Yuzu Spa"))
	b.WriteString("\n\n")
	b.WriteString("Use ←/→ or a/d, or steer with the mouse.\n")
	b.WriteString("Catch yuzu and cats. Dodge the rain!\n")

	if snap.Best > 0 {
		b.WriteString("\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Best: %d", snap.Best)))
		b.WriteString("\n")
	}

	if m.showScores {
		b.WriteString("\n")
		b.WriteString(LeaderboardTable(snap.Leaderboard))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())))

	return m.place(panelStyle.Render(b.String()))
}

// gameOverView renders the final score, wisdom and leaderboard.
func (m Model) gameOverView(snap capyspa.Snapshot) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Spa Day Over!"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("FINAL SCORE"))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d", snap.Score)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("soaked for " + capyspa.FormatElapsed(snap.ElapsedMs)))
	b.WriteString("\n")

	if snap.NewRecord {
		b.WriteString("\n")
		b.WriteString(recordStyle.Render("New record!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if snap.LoadingWisdom {
		b.WriteString(m.spinner.View())
		b.WriteString(mutedStyle.Render(" Consulting the Capy Elder..."))
	} else {
		b.WriteString(wisdomStyle.Render(fmt.Sprintf("%q", snap.Wisdom)))
	}
	b.WriteString("\n\n")

	b.WriteString(LeaderboardTable(snap.Leaderboard))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.help.ShortHelpView(m.keyMapper.Keys().GameOverHelp())))

	return m.place(panelStyle.Render(b.String()))
}

// place centers content on the terminal.
func (m Model) place(content string) string {
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
