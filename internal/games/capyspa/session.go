package capyspa

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yuzu-spa/internal/config"
	"github.com/vovakirdan/yuzu-spa/internal/core"
	"github.com/vovakirdan/yuzu-spa/internal/leaderboard"
	"github.com/vovakirdan/yuzu-spa/internal/storage"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Board is the leaderboard the session records finished runs into.
// *leaderboard.Manager implements it.
type Board interface {
	Record(score int, at time.Time) ([]leaderboard.Entry, error)
	Entries() []leaderboard.Entry
	Best() int
}

// RunRecorder stores the history of finished runs.
type RunRecorder interface {
	SaveRun(score int, elapsed time.Duration) (int64, error)
}

// Options configures a Session. Zero values get working defaults.
type Options struct {
	Board  Board       // defaults to an in-memory leaderboard
	Runs   RunRecorder // optional
	Rand   Rand        // defaults to a time-seeded source
	Logger *log.Logger // defaults to discarding
}

// Result describes a finished run.
type Result struct {
	Score       int
	Elapsed     time.Duration
	NewRecord   bool
	Generation  uint64 // tag for the wisdom request issued for this run
	Leaderboard []leaderboard.Entry
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Spawned bool
	Hits    []Hit
	Ended   *Result // set on the tick the run ended
}

// Session is the complete mutable state of one player's game.
// It is not safe for concurrent use; frontends serialize access.
type Session struct {
	cfg     config.GameConfig
	spawner *Spawner
	input   *InputTracker
	board   Board
	runs    RunRecorder
	logger  *log.Logger

	phase     Phase
	items     []Entity
	score     int
	lives     int
	startedAt time.Time
	elapsed   time.Duration
	best      int
	newRecord bool

	generation    uint64
	wisdom        string
	loadingWisdom bool
	lastResult    Result
}

// NewSession creates an idle session.
func NewSession(cfg config.GameConfig, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Board == nil {
		opts.Board = leaderboard.NewManager(storage.NewMemory(nil), cfg.Leaderboard.Capacity, opts.Logger)
	}

	s := &Session{
		cfg:    cfg,
		board:  opts.Board,
		runs:   opts.Runs,
		logger: opts.Logger,
		phase:  PhaseIdle,
		lives:  cfg.Scoring.Lives,
		best:   opts.Board.Best(),
	}
	s.spawner = NewSpawner(&s.cfg, opts.Rand)
	s.input = NewInputTracker(&s.cfg)
	return s
}

// Config returns the session tuning.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Playing reports whether a run is in progress.
func (s *Session) Playing() bool {
	return s.phase == PhasePlaying
}

// Generation identifies the current run. It changes on every Start.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Start begins a new run. It is a no-op while a run is in progress.
func (s *Session) Start(now time.Time) bool {
	if s.phase == PhasePlaying {
		return false
	}

	s.generation++
	s.phase = PhasePlaying
	s.items = s.items[:0]
	s.score = 0
	s.lives = s.cfg.Scoring.Lives
	s.startedAt = now
	s.elapsed = 0
	s.newRecord = false
	s.wisdom = ""
	s.loadingWisdom = false
	s.best = max(s.best, s.board.Best())
	s.input.Center()
	s.spawner.Reset(now)

	s.logger.Debug("run started", "generation", s.generation)
	return true
}

// Tick advances the run by one frame: spawn, fall and prune, held-key
// movement, then collisions. When lives run out the run is ended after all
// of this tick's updates are applied.
func (s *Session) Tick(now time.Time) TickResult {
	var res TickResult
	if s.phase != PhasePlaying {
		return res
	}

	if e, ok := s.spawner.MaybeSpawn(now, s.score); ok {
		s.items = append(s.items, e)
		res.Spawned = true
	}

	s.items = Advance(s.items, s.cfg.World.Height)
	s.input.Step()

	s.items, res.Hits = Collide(s.PlayerRect(), s.items, s.cfg.Items.Size, Scoring{
		Yuzu: s.cfg.Scoring.Yuzu,
		Cat:  s.cfg.Scoring.Cat,
	})
	for _, h := range res.Hits {
		s.score += h.Points
		s.lives += h.Lives
	}

	s.elapsed = now.Sub(s.startedAt)

	if s.lives <= 0 {
		if result, ok := s.End(now); ok {
			res.Ended = &result
		}
	}
	return res
}

// End finishes the current run: it records the leaderboard and run history
// and marks wisdom as loading. Only the first call per run has any effect;
// later calls return the same result and false.
func (s *Session) End(now time.Time) (Result, bool) {
	if s.phase != PhasePlaying {
		return s.lastResult, false
	}

	s.phase = PhaseGameOver
	s.elapsed = now.Sub(s.startedAt)
	s.newRecord = s.score > s.best

	board, err := s.board.Record(s.score, now)
	if err != nil {
		s.logger.Warn("could not save leaderboard", "error", err)
	}
	s.best = max(s.best, s.score)

	if s.runs != nil {
		if _, err := s.runs.SaveRun(s.score, s.elapsed); err != nil {
			s.logger.Warn("could not save run", "error", err)
		}
	}

	s.loadingWisdom = true
	s.lastResult = Result{
		Score:       s.score,
		Elapsed:     s.elapsed,
		NewRecord:   s.newRecord,
		Generation:  s.generation,
		Leaderboard: board,
	}

	s.logger.Info("run finished",
		"score", s.score,
		"elapsed", s.elapsed.Round(time.Millisecond),
		"new_record", s.newRecord,
	)
	return s.lastResult, true
}

// ApplyWisdom stores the wisdom text for the run identified by generation.
// Results for any other run are dropped.
func (s *Session) ApplyWisdom(generation uint64, text string) bool {
	if generation != s.generation || s.phase != PhaseGameOver {
		return false
	}
	s.wisdom = text
	s.loadingWisdom = false
	return true
}

// KeyDown records a held key. Movement only applies while playing.
func (s *Session) KeyDown(key string) {
	s.input.KeyDown(key)
}

// KeyUp releases a key.
func (s *Session) KeyUp(key string) {
	s.input.KeyUp(key)
}

// ReleaseKeys releases every held key.
func (s *Session) ReleaseKeys() {
	s.input.ReleaseAll()
}

// PointerMove moves the player under the pointer. Ignored unless playing.
func (s *Session) PointerMove(displayX, displayWidth float64) {
	if s.phase != PhasePlaying {
		return
	}
	s.input.PointerMove(displayX, displayWidth)
}

// PlayerRect returns the player's hitbox.
func (s *Session) PlayerRect() core.RectF {
	return core.NewRectF(s.input.X(), s.cfg.PlayerY(), s.cfg.Player.Width, s.cfg.Player.Height)
}
