// Package config provides YAML-based game configuration loading for Yuzu Spa.
package config

// GameConfig contains all tuning for the spa game.
// All distances are in logical units; speeds are per tick.
type GameConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Items       ItemsConfig       `yaml:"items"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Wisdom      WisdomConfig      `yaml:"wisdom"`
}

// WorldConfig defines the logical coordinate space.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the capybara hitbox and movement.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomPadding float64 `yaml:"bottom_padding"` // Gap between player box and world bottom
	Speed         float64 `yaml:"speed"`          // Key-driven movement per tick
}

// ItemsConfig defines falling item dimensions.
type ItemsConfig struct {
	Size float64 `yaml:"size"`
}

// SpawnConfig defines the spawner cadence and fall speed.
type SpawnConfig struct {
	IntervalMs  int     `yaml:"interval_ms"`
	BaseGravity float64 `yaml:"base_gravity"`
}

// ScoringConfig defines per-category effects and starting lives.
type ScoringConfig struct {
	Yuzu  int `yaml:"yuzu"`
	Cat   int `yaml:"cat"`
	Lives int `yaml:"lives"`
}

// LeaderboardConfig defines leaderboard persistence.
type LeaderboardConfig struct {
	Capacity int `yaml:"capacity"`
}

// WisdomConfig defines the text-generation endpoint.
// The API key never lives in YAML; it comes from the environment.
type WisdomConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// PlayerY returns the fixed top edge of the player hitbox.
func (c GameConfig) PlayerY() float64 {
	return c.World.Height - c.Player.Height - c.Player.BottomPadding
}

// MaxPlayerX returns the largest valid player x.
func (c GameConfig) MaxPlayerX() float64 {
	return c.World.Width - c.Player.Width
}
