package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yuzu-spa/internal/config"
	"github.com/vovakirdan/yuzu-spa/internal/core"
	"github.com/vovakirdan/yuzu-spa/internal/games/capyspa"
	"github.com/vovakirdan/yuzu-spa/internal/wisdom"
)

// Options configures a terminal game model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Board   capyspa.Board
	Runs    capyspa.RunRecorder
	Wisdom  wisdom.Fetcher
	Logger  *log.Logger

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration
}

// Model is the Bubble Tea model for one player's spa session.
type Model struct {
	session    *capyspa.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *KeyHold
	help       help.Model
	spinner    spinner.Model
	wisdom     wisdom.Fetcher
	logger     *log.Logger
	showScores bool
	quitting   bool
	clock      func() time.Time // key presses only; ticks carry their own time
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Wisdom == nil {
		opts.Wisdom = wisdom.New(wisdom.Options{Logger: opts.Logger})
	}

	session := capyspa.NewSession(opts.Game, capyspa.Options{
		Board:  opts.Board,
		Runs:   opts.Runs,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Logger: opts.Logger,
	})

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewKeyHold(opts.HoldWindow),
		help:      help.New(),
		spinner:   sp,
		wisdom:    opts.Wisdom,
		logger:    opts.Logger,
		clock:     time.Now,
	}
}

// Init initializes the model. The tick loop starts with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case WisdomMsg:
		if !m.session.ApplyWisdom(msg.Generation, msg.Text) {
			m.logger.Debug("dropping stale wisdom", "generation", msg.Generation)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Snapshot().LoadingWisdom {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if k := m.keyMapper.MoveKey(msg); k != "" {
		m.hold.Press(k, m.clock())
		m.session.KeyDown(k)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart, core.ActionRestart:
		if action == core.ActionRestart && m.session.Phase() != capyspa.PhaseGameOver {
			return m, nil
		}
		return m.start()
	case core.ActionScores:
		if !m.session.Playing() {
			m.showScores = !m.showScores
		}
	}

	return m, nil
}

// start begins a new run and kicks off the tick chain.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.session.Start(m.clock()) {
		return m, nil
	}
	m.showScores = false
	return m, tickCmd(m.config.TickRate)
}

// handleMouse maps pointer motion over the pool to the player position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.session.Playing() {
		return m, nil
	}
	cfg := m.session.Config()
	field := capyspa.Field(m.screen.Width(), m.screen.Height(), cfg.World.Width, cfg.World.Height)
	innerW := field.W - 2
	// Pointer at the middle of the cell
	x := float64(msg.X-field.X-1) + 0.5
	m.session.PointerMove(x, float64(innerW))
	return m, nil
}

// handleResize processes window resize events.
// Positions are logical, so a resize never disturbs the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.session.Playing() {
		return m, nil
	}

	for _, k := range m.hold.Expired(now) {
		m.session.KeyUp(k)
	}

	res := m.session.Tick(now)
	if res.Ended == nil {
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Reset()
	m.session.ReleaseKeys()
	return m, tea.Batch(
		fetchWisdomCmd(m.wisdom, res.Ended.Generation, res.Ended.Score),
		m.spinner.Tick,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	capyspa.Render(m.screen, m.session.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".yuzuspa", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("yuzuspa_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("saved screenshot", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	switch snap.Phase {
	case capyspa.PhaseIdle:
		return m.titleView(snap)
	case capyspa.PhaseGameOver:
		return m.gameOverView(snap)
	}

	capyspa.Render(m.screen, snap)
	return RenderScreen(m.screen)
}

// Snapshot exposes the session state, mainly for tests.
func (m Model) Snapshot() capyspa.Snapshot {
	return m.session.Snapshot()
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering without a button held
	)

	_, err := p.Run()
	return err
}
