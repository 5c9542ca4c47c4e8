package engine

import "fmt"

// Config is the static setup of an engine: board size, level table and
// booster tuning. It is read-only once the engine is built.
type Config struct {
	Rows             int
	Cols             int
	Levels           []LevelConfig
	StarThreshold    int
	BoosterCells     int
	MaxCascadeRounds int
}

// DefaultLevels is the stock three-level campaign.
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{Name: "Warm-up", TargetScore: 50, MaxMoves: 20, TimeLimit: 60},
		{Name: "Chain Reaction", TargetScore: 70, MaxMoves: 40, TimeLimit: 100},
		{Name: "Master", TargetScore: 100, MaxMoves: 50, TimeLimit: 150},
	}
}

// DefaultConfig returns the stock 8x8 setup.
func DefaultConfig() Config {
	return Config{
		Rows:             8,
		Cols:             8,
		Levels:           DefaultLevels(),
		StarThreshold:    DefaultStarThreshold,
		BoosterCells:     DefaultBoosterCells,
		MaxCascadeRounds: DefaultMaxCascadeRounds,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Rows < MinRunLength || c.Cols < MinRunLength {
		return fmt.Errorf("engine: board must be at least %dx%d, got %dx%d",
			MinRunLength, MinRunLength, c.Rows, c.Cols)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("engine: level table is empty")
	}
	for i, lvl := range c.Levels {
		if lvl.TargetScore <= 0 || lvl.MaxMoves <= 0 || lvl.TimeLimit <= 0 {
			return fmt.Errorf("engine: level %d needs positive target, moves and time limit", i+1)
		}
	}
	return nil
}

// Engine owns the grid, the session and the selection of one playthrough.
// It is not safe for concurrent use: callers serialize clicks and timer
// ticks, and every call runs its cascade to completion before returning.
type Engine struct {
	cfg     Config
	src     Source
	grid    *Grid
	session *Session

	selected    Addr
	hasSelected bool
}

// New builds an engine and initializes the first level.
func New(cfg Config, src Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BoosterCells <= 0 {
		cfg.BoosterCells = DefaultBoosterCells
	}
	if cfg.MaxCascadeRounds <= 0 {
		cfg.MaxCascadeRounds = DefaultMaxCascadeRounds
	}

	session, err := NewSession(cfg.Levels, cfg.StarThreshold)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		src:     src,
		session: session,
	}
	if _, err := e.Initialize(0); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize starts the given level on a fresh random grid. Runs already
// present on the new grid are resolved without scoring before it returns.
func (e *Engine) Initialize(level int) (Update, error) {
	if err := e.session.Start(level); err != nil {
		return e.reject(err)
	}
	return e.startLevel(false), nil
}

// startLevel builds the grid for the session's current level. With scored
// set, runs on the fresh grid count toward the new level's score and stars.
func (e *Engine) startLevel(scored bool) Update {
	e.grid = NewRandomGrid(e.cfg.Rows, e.cfg.Cols, e.src)
	e.clearSelection()
	res := Resolve(e.grid, e.src, e.cfg.MaxCascadeRounds)

	up := Update{}
	up.Events = append(up.Events, Event{Kind: EventLevelStarted, Level: e.session.State().Level})
	if scored {
		e.credit(&up, res.Score, res.Stars)
		appendRunEvents(&up, res.Runs, res.Specials)
	}
	if res.Truncated {
		up.Events = append(up.Events, Event{Kind: EventCascadeTruncated})
	}
	up.State = e.session.State()
	return up
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Cell returns the cell at a, empty when out of bounds.
func (e *Engine) Cell(a Addr) Cell {
	return e.grid.Get(a)
}

// Rows returns the board height.
func (e *Engine) Rows() int {
	return e.grid.Rows()
}

// Cols returns the board width.
func (e *Engine) Cols() int {
	return e.grid.Cols()
}

// State returns the session state.
func (e *Engine) State() SessionState {
	return e.session.State()
}

// Levels returns the level table.
func (e *Engine) Levels() []LevelConfig {
	return e.session.Levels()
}

// Selection returns the selected address, if any.
func (e *Engine) Selection() (Addr, bool) {
	return e.selected, e.hasSelected
}

// TimerRunning reports whether the one-second timer should be ticking.
func (e *Engine) TimerRunning() bool {
	return e.session.Playing()
}

// Tick consumes one second of the level clock.
func (e *Engine) Tick() (Update, error) {
	if err := e.session.Tick(); err != nil {
		return e.reject(err)
	}
	up := Update{Events: []Event{{Kind: EventTimerTick}}}
	e.finish(&up)
	return up, nil
}

// Pause suspends play and the timer.
func (e *Engine) Pause() (Update, error) {
	if err := e.session.Pause(); err != nil {
		return e.reject(err)
	}
	up := Update{Events: []Event{{Kind: EventPaused}}}
	e.finish(&up)
	return up, nil
}

// Resume returns from a pause.
func (e *Engine) Resume() (Update, error) {
	if err := e.session.Resume(); err != nil {
		return e.reject(err)
	}
	up := Update{Events: []Event{{Kind: EventResumed}}}
	e.finish(&up)
	return up, nil
}

// TriggerBooster clears random cells, rerolls them and resolves the cascade.
// Star collection restarts before the cascade runs.
func (e *Engine) TriggerBooster() (Update, error) {
	if !e.session.Playing() {
		return e.reject(ErrNotPlaying)
	}
	if err := e.session.ConsumeBooster(); err != nil {
		return e.reject(err)
	}

	det := Boost(e.grid, e.src, e.cfg.BoosterCells)
	up := Update{}
	e.credit(&up, det.Score, 0)
	up.Events = append(up.Events, Event{Kind: EventBoosted, Addrs: det.Cleared, Score: det.Score})

	e.cascade(&up)
	e.session.Evaluate()
	e.finish(&up)
	return up, nil
}

// AdvanceLevel moves from a completed level to the next one. Runs on the new
// grid are resolved and scored before it returns.
func (e *Engine) AdvanceLevel() (Update, error) {
	next, err := e.session.NextLevel()
	if err != nil {
		return e.reject(err)
	}
	if err := e.session.Start(next); err != nil {
		return e.reject(err)
	}
	return e.startLevel(true), nil
}

// Replay restarts the current level from a popup, or the first level once
// the whole campaign is complete.
func (e *Engine) Replay() (Update, error) {
	level, err := e.session.ReplayLevel()
	if err != nil {
		return e.reject(err)
	}
	if err := e.session.Start(level); err != nil {
		return e.reject(err)
	}
	return e.startLevel(false), nil
}

// reject returns the unchanged state alongside the rejection reason.
func (e *Engine) reject(err error) (Update, error) {
	return Update{State: e.session.State()}, err
}

// credit adds points and stars to the session and the update.
func (e *Engine) credit(up *Update, score, stars int) {
	e.session.AddScore(score)
	e.session.AddStars(stars)
	up.ScoreDelta += score
}

// cascade runs gravity and rescans until the grid is stable.
func (e *Engine) cascade(up *Update) {
	res := Resolve(e.grid, e.src, e.cfg.MaxCascadeRounds)
	e.credit(up, res.Score, res.Stars)

	if res.Refilled > 0 {
		up.Events = append(up.Events, Event{Kind: EventRefilled, Score: res.Refilled})
	}
	appendRunEvents(up, res.Runs, res.Specials)
	if res.Truncated {
		up.Events = append(up.Events, Event{Kind: EventCascadeTruncated})
	}
}

// finish appends the popup event, if any, and stamps the final state.
func (e *Engine) finish(up *Update) {
	state := e.session.State()
	if state.Phase == PhasePopup {
		if kind, ok := popupEvent(state.Popup); ok && !up.Has(kind) {
			up.Events = append(up.Events, Event{Kind: kind, Level: state.Level, Score: state.Score})
		}
		e.clearSelection()
	}
	up.State = state
}

func appendRunEvents(up *Update, runs []Run, specials []Placement) {
	for _, run := range runs {
		up.Events = append(up.Events, Event{
			Kind:  EventCleared,
			Addrs: run.Addrs(),
			Score: run.Length,
		})
	}
	for _, p := range specials {
		up.Events = append(up.Events, Event{
			Kind:    EventSpecialCreated,
			Addrs:   []Addr{p.At},
			Special: p.Special,
		})
	}
}
