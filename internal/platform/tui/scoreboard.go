package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
	"github.com/vovakirdan/yuzu-spa/internal/leaderboard"
	"github.com/vovakirdan/yuzu-spa/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 70 // Minimum width to show the view list sidebar
	sidebarWidth       = 18 // Width of view list sidebar
	dateFormat         = "Jan 02 15:04"
)

// scoreboardView is one page of the scoreboard.
type scoreboardView int

const (
	viewTop scoreboardView = iota
	viewHistory
)

var scoreboardViews = []string{"Top scores", "Recent runs"}

// ScoreboardData is everything the scoreboard shows.
type ScoreboardData struct {
	Leaderboard []leaderboard.Entry
	Runs        []storage.RunEntry
	Stats       *storage.Stats
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	data        ScoreboardData
	view        scoreboardView
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show the view list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(data ScoreboardData, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		data:        data,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewHistory:
		columns = []table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help
	)
	t.SetStyles(tableStyles())
	return t
}

// tableStyles returns the shared table look.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// updateTableRows fills the table for the current view.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case viewHistory:
		rows = make([]table.Row, len(m.data.Runs))
		for i, r := range m.data.Runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.ID),
				fmt.Sprintf("%d", r.Score),
				capyspa.FormatElapsed(r.Elapsed.Milliseconds()),
				r.CreatedAt.Local().Format(dateFormat),
			}
		}
	default:
		rows = leaderboardRows(m.data.Leaderboard)
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func leaderboardRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		date := "-"
		if !e.Date.IsZero() {
			date = e.Date.Local().Format(dateFormat)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			date,
		}
	}
	return rows
}

// LeaderboardTable renders a static leaderboard table.
func LeaderboardTable(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No scores yet. Be the first to relax!")
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 13},
		}),
		table.WithRows(leaderboardRows(entries)),
		table.WithHeight(len(entries)+2), // Header plus its border
	)
	s := tableStyles()
	s.Selected = s.Cell
	t.SetStyles(s)
	return t.View()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.setView((m.view + 1) % scoreboardView(len(scoreboardViews)))
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.setView((m.view + scoreboardView(len(scoreboardViews)) - 1) % scoreboardView(len(scoreboardViews)))
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) setView(v scoreboardView) {
	m.view = v
	m.table = m.createTable()
	m.updateTableRows()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("YUZU SPA - %s", strings.ToUpper(scoreboardViews[m.view]))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	if m.view == viewHistory && m.data.Stats != nil {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(FormatStats(m.data.Stats)))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the list of views.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range scoreboardViews {
		cursor := "  "
		style := lipgloss.NewStyle()
		if scoreboardView(i) == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.data.Leaderboard) == 0
	if m.view == viewHistory {
		empty = len(m.data.Runs) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// FormatStats renders aggregate run statistics on one line.
func FormatStats(s *storage.Stats) string {
	if s == nil || s.GamesCount == 0 {
		return "No runs recorded yet."
	}
	last := "-"
	if !s.LastPlayed.IsZero() {
		last = s.LastPlayed.Local().Format(dateFormat)
	}
	return fmt.Sprintf("Games: %d  Best: %d  Average: %.1f  Last played: %s",
		s.GamesCount, s.HighScore, s.AvgScore, last)
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(data ScoreboardData, width, height int) error {
	model := NewScoreboardModel(data, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
