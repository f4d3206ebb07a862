package capyspa

import "github.com/vovakirdan/yuzu-spa/internal/leaderboard"

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	Phase         Phase               `json:"phase"`
	Playing       bool                `json:"isPlaying"`
	GameOver      bool                `json:"gameOver"`
	Generation    uint64              `json:"generation"`
	Width         float64             `json:"width"`
	Height        float64             `json:"height"`
	ItemSize      float64             `json:"itemSize"`
	PlayerX       float64             `json:"playerX"`
	PlayerY       float64             `json:"playerY"`
	PlayerW       float64             `json:"playerW"`
	PlayerH       float64             `json:"playerH"`
	Items         []Entity            `json:"items"`
	Score         int                 `json:"score"`
	Lives         int                 `json:"lives"` // never negative
	ElapsedMs     int64               `json:"elapsedMs"`
	Best          int                 `json:"highScore"`
	NewRecord     bool                `json:"newRecord"`
	Wisdom        string              `json:"wisdom"`
	LoadingWisdom bool                `json:"loadingWisdom"`
	Leaderboard   []leaderboard.Entry `json:"leaderboard"`
}

// Snapshot returns the current state. The slices are copies.
func (s *Session) Snapshot() Snapshot {
	items := make([]Entity, len(s.items))
	copy(items, s.items)

	var board []leaderboard.Entry
	if s.phase != PhasePlaying {
		board = s.board.Entries()
	}

	return Snapshot{
		Phase:         s.phase,
		Playing:       s.phase == PhasePlaying,
		GameOver:      s.phase == PhaseGameOver,
		Generation:    s.generation,
		Width:         s.cfg.World.Width,
		Height:        s.cfg.World.Height,
		ItemSize:      s.cfg.Items.Size,
		PlayerX:       s.input.X(),
		PlayerY:       s.cfg.PlayerY(),
		PlayerW:       s.cfg.Player.Width,
		PlayerH:       s.cfg.Player.Height,
		Items:         items,
		Score:         s.score,
		Lives:         max(s.lives, 0),
		ElapsedMs:     s.elapsed.Milliseconds(),
		Best:          s.best,
		NewRecord:     s.newRecord,
		Wisdom:        s.wisdom,
		LoadingWisdom: s.loadingWisdom,
		Leaderboard:   board,
	}
}
