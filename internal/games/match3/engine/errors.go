package engine

import "errors"

// Rejections. A rejected call leaves the engine untouched.
var (
	ErrOutOfBounds       = errors.New("engine: address out of bounds")
	ErrNotPlaying        = errors.New("engine: session is not playing")
	ErrBoosterDisabled   = errors.New("engine: booster is not charged")
	ErrNotSpecial        = errors.New("engine: cell is not a special tile")
	ErrInvalidTransition = errors.New("engine: transition not allowed from current state")
	ErrInvalidLevel      = errors.New("engine: level index out of range")
)
