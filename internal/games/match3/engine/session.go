package engine

import "fmt"

// DefaultStarThreshold is the number of cleared stars that charges the booster.
const DefaultStarThreshold = 6

// LevelConfig holds the goals and limits of one level.
type LevelConfig struct {
	Name        string
	TargetScore int
	MaxMoves    int
	TimeLimit   int // Seconds
}

// Phase is the top-level session state.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhasePopup
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhasePopup:
		return "popup"
	default:
		return "unknown"
	}
}

// PopupReason says why a popup is shown.
type PopupReason uint8

const (
	PopupNone PopupReason = iota
	PopupLevelComplete
	PopupGameOver
	PopupAllLevelsComplete
)

// String returns the popup reason name.
func (r PopupReason) String() string {
	switch r {
	case PopupNone:
		return "none"
	case PopupLevelComplete:
		return "level_complete"
	case PopupGameOver:
		return "game_over"
	case PopupAllLevelsComplete:
		return "all_levels_complete"
	default:
		return "unknown"
	}
}

// SessionState is the progress of one playthrough.
type SessionState struct {
	Level          int // 0-indexed
	LevelCount     int
	TargetScore    int
	MaxMoves       int
	Score          int
	Moves          int
	TimeRemaining  int // Seconds
	Phase          Phase
	Popup          PopupReason // PopupNone unless Phase is PhasePopup
	StarCount      int
	BoosterEnabled bool
}

// IsPaused reports whether input and the timer are suspended, which is the
// case for both an explicit pause and any popup.
func (s SessionState) IsPaused() bool {
	return s.Phase != PhasePlaying
}

// PopupVisible reports whether a popup is shown.
func (s SessionState) PopupVisible() bool {
	return s.Phase == PhasePopup
}

// FinalLevel reports whether the current level is the last one.
func (s SessionState) FinalLevel() bool {
	return s.Level >= s.LevelCount-1
}

// Session is the level/progress state machine. It knows nothing about the grid.
type Session struct {
	levels        []LevelConfig
	starThreshold int
	state         SessionState
}

// NewSession creates a session over an ordered, non-empty level table.
func NewSession(levels []LevelConfig, starThreshold int) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("engine: level table is empty")
	}
	if starThreshold <= 0 {
		starThreshold = DefaultStarThreshold
	}
	table := make([]LevelConfig, len(levels))
	copy(table, levels)
	return &Session{
		levels:        table,
		starThreshold: starThreshold,
		state:         SessionState{LevelCount: len(table)},
	}, nil
}

// State returns a copy of the current state.
func (s *Session) State() SessionState {
	return s.state
}

// Levels returns a copy of the level table.
func (s *Session) Levels() []LevelConfig {
	out := make([]LevelConfig, len(s.levels))
	copy(out, s.levels)
	return out
}

// Level returns the configuration of the current level.
func (s *Session) Level() LevelConfig {
	return s.levels[s.state.Level]
}

// StarThreshold returns the star count that charges the booster.
func (s *Session) StarThreshold() int {
	return s.starThreshold
}

// Start resets score, moves and time to the given level and enters Playing.
// Star progress carries over.
func (s *Session) Start(level int) error {
	if level < 0 || level >= len(s.levels) {
		return ErrInvalidLevel
	}
	cfg := s.levels[level]
	s.state.Level = level
	s.state.TargetScore = cfg.TargetScore
	s.state.MaxMoves = cfg.MaxMoves
	s.state.Score = 0
	s.state.Moves = 0
	s.state.TimeRemaining = cfg.TimeLimit
	s.state.Phase = PhasePlaying
	s.state.Popup = PopupNone
	return nil
}

// Playing reports whether input and the timer are live.
func (s *Session) Playing() bool {
	return s.state.Phase == PhasePlaying
}

// Pause suspends a playing session.
func (s *Session) Pause() error {
	if s.state.Phase != PhasePlaying {
		return ErrInvalidTransition
	}
	s.state.Phase = PhasePaused
	return nil
}

// Resume returns a paused session to Playing.
func (s *Session) Resume() error {
	if s.state.Phase != PhasePaused {
		return ErrInvalidTransition
	}
	s.state.Phase = PhasePlaying
	return nil
}

// Tick consumes one second. Reaching zero shows the game-over popup.
func (s *Session) Tick() error {
	if s.state.Phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.state.TimeRemaining > 0 {
		s.state.TimeRemaining--
	}
	if s.state.TimeRemaining == 0 {
		s.showPopup(PopupGameOver)
	}
	return nil
}

// AddScore credits cleared cells.
func (s *Session) AddScore(points int) {
	s.state.Score += points
}

// AddStars records cleared star symbols; the booster arms at the threshold
// and stays armed until used.
func (s *Session) AddStars(n int) {
	if n <= 0 {
		return
	}
	s.state.StarCount += n
	if s.state.StarCount >= s.starThreshold {
		s.state.BoosterEnabled = true
	}
}

// ConsumeBooster disarms the booster and restarts star collection.
func (s *Session) ConsumeBooster() error {
	if !s.state.BoosterEnabled {
		return ErrBoosterDisabled
	}
	s.state.BoosterEnabled = false
	s.state.StarCount = 0
	return nil
}

// RecordMove counts one adjacent swap.
func (s *Session) RecordMove() {
	s.state.Moves++
}

// Evaluate applies the level-end rules after an action: reaching the target
// wins the level (or the campaign on the last level), otherwise running out
// of moves ends the game. Returns the popup shown, PopupNone if play goes on.
func (s *Session) Evaluate() PopupReason {
	if s.state.Phase == PhasePopup {
		return s.state.Popup
	}

	cfg := s.Level()
	switch {
	case s.state.Score >= cfg.TargetScore:
		if s.state.FinalLevel() {
			s.showPopup(PopupAllLevelsComplete)
		} else {
			s.showPopup(PopupLevelComplete)
		}
	case s.state.Moves >= cfg.MaxMoves:
		s.showPopup(PopupGameOver)
	default:
		return PopupNone
	}
	return s.state.Popup
}

func (s *Session) showPopup(reason PopupReason) {
	s.state.Phase = PhasePopup
	s.state.Popup = reason
}

// NextLevel returns the level AdvanceLevel would start.
func (s *Session) NextLevel() (int, error) {
	if s.state.Phase != PhasePopup || s.state.Popup != PopupLevelComplete || s.state.FinalLevel() {
		return 0, ErrInvalidTransition
	}
	return s.state.Level + 1, nil
}

// ReplayLevel returns the level Replay would start: the current level, or
// the first one after the whole campaign was cleared.
func (s *Session) ReplayLevel() (int, error) {
	if s.state.Phase != PhasePopup {
		return 0, ErrInvalidTransition
	}
	if s.state.Popup == PopupAllLevelsComplete {
		return 0, nil
	}
	return s.state.Level, nil
}
