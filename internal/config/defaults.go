package config

import (
	_ "embed"
)

//go:embed defaults/capyspa.yaml
var defaultGameYAML []byte

// Default returns the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  600,
			Height: 800,
		},
		Player: PlayerConfig{
			Width:         80,
			Height:        60,
			BottomPadding: 20,
			Speed:         12,
		},
		Items: ItemsConfig{
			Size: 48,
		},
		Spawn: SpawnConfig{
			IntervalMs:  600,
			BaseGravity: 3,
		},
		Scoring: ScoringConfig{
			Yuzu:  10,
			Cat:   50,
			Lives: 3,
		},
		Leaderboard: LeaderboardConfig{
			Capacity: 5,
		},
		Wisdom: WisdomConfig{
			Endpoint: "https://generativelanguage.googleapis.com/v1beta",
			Model:    "gemini-2.5-flash",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
