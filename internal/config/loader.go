package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.arcade/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func LoadMatch3(customPath string) (Match3Config, error) {
	var cfg Match3Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if c, ok := readMatch3(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readMatch3(filepath.Join("configs", "match3.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readMatch3 reads an optional config file. Missing or broken files are
// skipped so the next location in the search order is tried.
func readMatch3(path string) (Match3Config, bool) {
	var cfg Match3Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the engine cannot run.
func (c Match3Config) Validate() error {
	if c.Board.Rows < 3 || c.Board.Cols < 3 {
		return fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Booster.StarThreshold < 1 {
		return errors.New("booster.star_threshold must be positive")
	}
	if c.Booster.Cells < 1 {
		return errors.New("booster.cells must be positive")
	}
	if len(c.Levels) == 0 {
		return errors.New("levels must not be empty")
	}
	for i, lvl := range c.Levels {
		if lvl.TargetScore <= 0 || lvl.MaxMoves <= 0 || lvl.TimeLimit <= 0 {
			return fmt.Errorf("level %d: target_score, max_moves and time_limit must be positive", i+1)
		}
	}
	return nil
}

// ApplyMatch3Preset rescales the level table and booster for a difficulty preset.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	s := scalingFor(preset)
	for i := range cfg.Levels {
		lvl := &cfg.Levels[i]
		lvl.TargetScore = scaleInt(lvl.TargetScore, s.Target)
		lvl.MaxMoves = scaleInt(lvl.MaxMoves, s.Moves)
		lvl.TimeLimit = scaleInt(lvl.TimeLimit, s.Time)
	}
	cfg.Booster.StarThreshold = max(1, cfg.Booster.StarThreshold+s.StarOffset)
}
