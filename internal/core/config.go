package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Banked score of the whole run
	Level    int  // Zero-based level index
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused or showing a popup
}

// EventKind identifies a run-level event the platform reacts to.
type EventKind int

const (
	EventRunStarted    EventKind = iota // A new playthrough began
	EventLevelFinished                  // A level ended with an outcome
)

// Event is reported through StepResult for persistence and logging.
type Event struct {
	Kind    EventKind
	Level   int    // Zero-based level index
	Score   int    // Level score at the time of the event
	Moves   int    // Moves used in the level
	Outcome string // "complete", "game_over" or "all_complete"
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
