package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "capyspa.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.yuzuspa/configs/capyspa.yaml -> ./configs/capyspa.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable world.
func (c GameConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world dimensions must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, errors.New("player is wider than the world"))
	}
	if c.PlayerY() < 0 {
		errs = append(errs, errors.New("player does not fit vertically"))
	}
	if c.Items.Size <= 0 || c.Items.Size > c.World.Width {
		errs = append(errs, errors.New("item size must be positive and fit the world"))
	}
	if c.Spawn.IntervalMs < 0 {
		errs = append(errs, errors.New("spawn interval must not be negative"))
	}
	if c.Spawn.BaseGravity <= 0 {
		errs = append(errs, errors.New("base gravity must be positive"))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, errors.New("player speed must not be negative"))
	}
	if c.Scoring.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if c.Leaderboard.Capacity <= 0 {
		errs = append(errs, errors.New("leaderboard capacity must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yuzuspa", "configs", filename)
}
