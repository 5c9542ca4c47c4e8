// Package match3 adapts the match-3 engine to the arcade game interface:
// cursor and mouse input, the one-second level clock, run scoring and
// rendering into a core.Screen.
package match3

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-master/internal/config"
	"github.com/vovakirdan/match-master/internal/core"
	"github.com/vovakirdan/match-master/internal/games/match3/engine"
	"github.com/vovakirdan/match-master/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "match3"

const (
	flashTicks   = 8  // Frames a cleared cell stays highlighted
	messageTicks = 45 // Frames a status message stays visible
)

// Outcomes reported with core.EventLevelFinished.
const (
	OutcomeComplete    = "complete"
	OutcomeGameOver    = "game_over"
	OutcomeAllComplete = "all_complete"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// selectedStartLevel is the zero-based level the next Reset starts on.
var selectedStartLevel int

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	if level < 0 {
		level = 0
	}
	selectedStartLevel = max(0, level-1)
}

// SetLogger routes game logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix(GameID)
}

// Game implements the match-3 puzzle as a registry.Game.
type Game struct {
	cfg     config.Match3Config
	engine  *engine.Engine
	runtime core.RuntimeConfig
	tick    uint64

	cursor     engine.Addr
	frameCount int // Frames since the last level clock tick
	banked     int // Score of levels already left behind in this run
	flash      map[engine.Addr]int
	message    string
	messageTTL int
	events     []core.Event
}

// New creates a new match-3 game.
func New() *Game {
	return &Game{
		flash: make(map[engine.Addr]int),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match Master"
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyMatch3Preset(&cfg, difficultyPreset)
	g.engine, g.cfg = newEngine(cfg, runtime.Seed)

	g.tick = 0
	g.cursor = engine.A(0, 0)
	g.frameCount = 0
	g.banked = 0
	g.message = ""
	g.messageTTL = 0
	clear(g.flash)
	g.events = g.events[:0]

	level := 0
	if selectedStartLevel > 0 && selectedStartLevel < len(g.cfg.Levels) {
		level = selectedStartLevel
	}
	if level > 0 {
		g.apply(g.engine.Initialize(level))
	}

	g.startRun()
}

// engineConfig converts the YAML configuration to engine settings.
// newEngine builds an engine seeded with seed, falling back to the default
// config when cfg is rejected. Returns the config actually in use.
func newEngine(cfg config.Match3Config, seed int64) (*engine.Engine, config.Match3Config) {
	eng, err := engine.New(engineConfig(cfg), rand.New(rand.NewSource(seed)))
	if err == nil {
		return eng, cfg
	}
	logger.Error("engine rejected config", "err", err)

	cfg = config.DefaultMatch3Config()
	eng, err = engine.New(engineConfig(cfg), rand.New(rand.NewSource(seed)))
	if err != nil {
		panic(fmt.Sprintf("match3: default config rejected: %v", err))
	}
	return eng, cfg
}

func engineConfig(cfg config.Match3Config) engine.Config {
	levels := make([]engine.LevelConfig, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = engine.LevelConfig{
			Name:        l.Name,
			TargetScore: l.TargetScore,
			MaxMoves:    l.MaxMoves,
			TimeLimit:   l.TimeLimit,
		}
	}
	return engine.Config{
		Rows:             cfg.Board.Rows,
		Cols:             cfg.Board.Cols,
		Levels:           levels,
		StarThreshold:    cfg.Booster.StarThreshold,
		BoosterCells:     cfg.Booster.Cells,
		MaxCascadeRounds: cfg.Cascade.MaxRounds,
	}
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// startRun begins a fresh playthrough on the current level.
func (g *Game) startRun() {
	g.banked = 0
	st := g.engine.State()
	g.events = append(g.events, core.Event{Kind: core.EventRunStarted, Level: st.Level})
	logger.Info("run started", "level", st.Level+1, "seed", g.runtime.Seed)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.decay()

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	st := g.engine.State()
	if st.PopupVisible() {
		g.handlePopup(in, st.Popup)
	} else if st.Phase == engine.PhasePlaying {
		g.handlePlay(in)
	}

	if g.engine.TimerRunning() {
		g.frameCount++
		if g.frameCount >= g.runtime.TickRate {
			g.frameCount = 0
			g.apply(g.engine.Tick())
		}
	} else {
		g.frameCount = 0
	}

	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
		g.events = g.events[:0]
	}
	return res
}

func (g *Game) togglePause() {
	switch g.engine.State().Phase {
	case engine.PhasePlaying:
		g.apply(g.engine.Pause())
	case engine.PhasePaused:
		g.apply(g.engine.Resume())
	}
}

// handlePlay moves the cursor and forwards clicks and the booster.
func (g *Game) handlePlay(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionConfirm) {
		g.click(g.cursor)
	}

	for _, p := range in.Clicks {
		if g.engine.State().Phase != engine.PhasePlaying {
			break
		}
		if addr, ok := g.layout().cellAt(p); ok {
			g.cursor = addr
			g.click(addr)
		}
	}

	if in.Has(core.ActionBooster) {
		up, err := g.engine.TriggerBooster()
		if errors.Is(err, engine.ErrBoosterDisabled) {
			st := g.engine.State()
			g.say("Booster needs %d more stars", g.engine.Config().StarThreshold-st.StarCount)
			return
		}
		g.apply(up, err)
		if err == nil {
			logger.Debug("booster fired", "score", up.ScoreDelta)
		}
	}
}

// handlePopup maps popup keys to level transitions.
func (g *Game) handlePopup(in core.InputFrame, popup engine.PopupReason) {
	next := in.Has(core.ActionNext)
	replay := in.Has(core.ActionRestart)
	if in.Has(core.ActionConfirm) || len(in.Clicks) > 0 {
		if popup == engine.PopupLevelComplete {
			next = true
		} else {
			replay = true
		}
	}

	switch {
	case next && popup == engine.PopupLevelComplete:
		st := g.engine.State()
		g.banked += st.Score
		g.apply(g.engine.AdvanceLevel())
	case replay:
		runOver := popup != engine.PopupLevelComplete
		g.apply(g.engine.Replay())
		if runOver {
			g.startRun()
		}
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor = engine.A(
		core.Clamp(g.cursor.Row+dr, 0, g.engine.Rows()-1),
		core.Clamp(g.cursor.Col+dc, 0, g.engine.Cols()-1),
	)
}

func (g *Game) click(a engine.Addr) {
	g.apply(g.engine.HandleCellClick(a))
}

// apply folds an engine update into flashes, messages, logs and run events.
func (g *Game) apply(up engine.Update, err error) {
	if err != nil {
		logger.Debug("engine rejected input", "err", err)
		return
	}

	st := up.State
	for _, ev := range up.Events {
		switch ev.Kind {
		case engine.EventCleared, engine.EventDetonated, engine.EventBoosted:
			for _, a := range ev.Addrs {
				g.flash[a] = flashTicks
			}
		case engine.EventSpecialCreated:
			g.say("%s created!", specialName(ev.Special))
		case engine.EventCascadeTruncated:
			logger.Warn("cascade truncated", "level", st.Level+1)
		case engine.EventLevelStarted:
			clear(g.flash)
			g.cursor = engine.A(0, 0)
			logger.Info("level started", "level", ev.Level+1)
		case engine.EventLevelComplete:
			g.finishLevel(st, OutcomeComplete)
		case engine.EventGameOver:
			g.finishLevel(st, OutcomeGameOver)
		case engine.EventAllLevelsComplete:
			g.finishLevel(st, OutcomeAllComplete)
		}
	}
}

func (g *Game) finishLevel(st engine.SessionState, outcome string) {
	g.events = append(g.events, core.Event{
		Kind:    core.EventLevelFinished,
		Level:   st.Level,
		Score:   st.Score,
		Moves:   st.Moves,
		Outcome: outcome,
	})
	logger.Info("level finished",
		"level", st.Level+1,
		"outcome", outcome,
		"score", st.Score,
		"moves", st.Moves,
		"time_left", st.TimeRemaining,
	)
}

func specialName(s engine.Special) string {
	switch s {
	case engine.SpecialBomb:
		return "Bomb"
	case engine.SpecialRocketRow, engine.SpecialRocketColumn:
		return "Rocket"
	default:
		return "Special"
	}
}

// say shows a transient status line.
func (g *Game) say(format string, args ...any) {
	g.message = fmt.Sprintf(format, args...)
	g.messageTTL = messageTicks
}

// decay ages flashes and the status message.
func (g *Game) decay() {
	for a, n := range g.flash {
		if n <= 1 {
			delete(g.flash, a)
			continue
		}
		g.flash[a] = n - 1
	}
	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
	}
}

// RunScore returns the banked score plus the current level's score.
func (g *Game) RunScore() int {
	return g.banked + g.engine.State().Score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.engine.State()
	return core.GameState{
		Score:    g.RunScore(),
		Level:    st.Level,
		GameOver: st.Popup == engine.PopupGameOver || st.Popup == engine.PopupAllLevelsComplete,
		Paused:   st.IsPaused(),
	}
}
