package match3

import "github.com/vovakirdan/match-master/internal/games/match3/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Level    int // 1-indexed for display
	Score    int // Current level score
	RunScore int
	Moves    int
	TimeLeft int
	Stars    int
	Booster  bool
	Phase    string
	Popup    string
	Cursor   engine.Addr
	Board    string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.engine.State()
	return Snapshot{
		Tick:     g.tick,
		Level:    st.Level + 1,
		Score:    st.Score,
		RunScore: g.RunScore(),
		Moves:    st.Moves,
		TimeLeft: st.TimeRemaining,
		Stars:    st.StarCount,
		Booster:  st.BoosterEnabled,
		Phase:    st.Phase.String(),
		Popup:    st.Popup.String(),
		Cursor:   g.cursor,
		Board:    g.engine.Grid().String(),
	}
}
