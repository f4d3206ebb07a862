package capyspa

import (
	"time"

	"github.com/vovakirdan/yuzu-spa/internal/config"
)

// Category roll thresholds. A single uniform roll r picks the category:
// r <= yuzuMax is yuzu, r <= rainMax is rain, anything above is a cat.
const (
	yuzuMax = 0.65
	rainMax = 0.85
)

// scoreSpeedDivisor sets how fast items accelerate with score.
// At 500 points items fall twice as fast as at 0.
const scoreSpeedDivisor = 500.0

// Rand is the randomness source used by the spawner.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner creates items on a fixed cadence.
type Spawner struct {
	cfg       *config.GameConfig
	rng       Rand
	interval  time.Duration
	lastSpawn time.Time
	lastID    int64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.GameConfig, rng Rand) *Spawner {
	return &Spawner{
		cfg:      cfg,
		rng:      rng,
		interval: time.Duration(cfg.Spawn.IntervalMs) * time.Millisecond,
	}
}

// Reset sets the spawn reference time, so the first item of a session
// appears one interval after it starts.
func (s *Spawner) Reset(now time.Time) {
	s.lastSpawn = now
}

// MaybeSpawn returns a new item if more than one interval has passed since
// the last spawn. The last-spawn time only moves when an item is produced.
func (s *Spawner) MaybeSpawn(now time.Time, score int) (Entity, bool) {
	if now.Sub(s.lastSpawn) <= s.interval {
		return Entity{}, false
	}

	size := s.cfg.Items.Size
	category := Classify(s.rng.Float64())
	e := Entity{
		ID:            s.nextID(now),
		X:             s.rng.Float64() * (s.cfg.World.Width - size),
		Y:             -size,
		Category:      category,
		Speed:         (s.rng.Float64()*2 + s.cfg.Spawn.BaseGravity) * SpeedMultiplier(score),
		Rotation:      s.rng.Float64() * 360,
		RotationSpeed: (s.rng.Float64() - 0.5) * 4,
	}

	s.lastSpawn = now
	return e, true
}

// nextID derives an id from the spawn time, bumped if the clock did not
// advance past the previous one.
func (s *Spawner) nextID(now time.Time) int64 {
	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Classify maps a uniform roll in [0,1) to a category.
func Classify(roll float64) Category {
	switch {
	case roll <= yuzuMax:
		return CategoryYuzu
	case roll <= rainMax:
		return CategoryRain
	default:
		return CategoryCat
	}
}

// SpeedMultiplier returns the fall-speed factor for a score. It is unbounded.
func SpeedMultiplier(score int) float64 {
	return 1 + float64(score)/scoreSpeedDivisor
}
