package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Booster: BoosterConfig{
			StarThreshold: 6,
			Cells:         10,
		},
		Cascade: CascadeConfig{
			MaxRounds: 256,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", TargetScore: 50, MaxMoves: 20, TimeLimit: 60},
			{Name: "Chain Reaction", TargetScore: 70, MaxMoves: 40, TimeLimit: 100},
			{Name: "Master", TargetScore: 100, MaxMoves: 50, TimeLimit: 150},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3":
		return defaultMatch3YAML
	default:
		return nil
	}
}
