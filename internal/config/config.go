// Package config provides YAML-based configuration loading and difficulty
// presets for Match Master.
package config

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Booster BoosterConfig `yaml:"booster"`
	Cascade CascadeConfig `yaml:"cascade"`
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// BoosterConfig defines how the star booster charges and what it clears.
type BoosterConfig struct {
	StarThreshold int `yaml:"star_threshold"` // Stars needed to arm the booster
	Cells         int `yaml:"cells"`          // Random cells cleared per use
}

// CascadeConfig bounds chain reactions.
type CascadeConfig struct {
	MaxRounds int `yaml:"max_rounds"`
}

// LevelConfig is one entry of the level table.
type LevelConfig struct {
	Name        string `yaml:"name"`
	TargetScore int    `yaml:"target_score"`
	MaxMoves    int    `yaml:"max_moves"`
	TimeLimit   int    `yaml:"time_limit"` // Seconds
}
