package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Level table used exactly as configured
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// Scaling holds the multipliers a preset applies to each level.
type Scaling struct {
	Target     float64 // Target score multiplier
	Moves      float64 // Move budget multiplier
	Time       float64 // Time limit multiplier
	StarOffset int     // Added to the booster star threshold
}

// scalingFor returns the scaling for a preset. Normal and fixed leave the
// table untouched.
func scalingFor(preset DifficultyPreset) Scaling {
	switch preset {
	case DifficultyEasy:
		return Scaling{Target: 0.8, Moves: 1.25, Time: 1.25, StarOffset: -1}
	case DifficultyHard:
		return Scaling{Target: 1.2, Moves: 0.8, Time: 0.8, StarOffset: 2}
	default:
		return Scaling{Target: 1, Moves: 1, Time: 1}
	}
}

// scaleInt multiplies and rounds, never going below 1.
func scaleInt(v int, f float64) int {
	return int(math.Max(1, math.Round(float64(v)*clampF(f, 0.1, 10))))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
