package match3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/match-master/internal/config"
	"github.com/vovakirdan/match-master/internal/core"
	"github.com/vovakirdan/match-master/internal/games/match3/engine"
)

// newTestGame pins the config to the embedded defaults so a user override
// in the home directory cannot leak into tests.
func newTestGame(t *testing.T, tickRate int, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match3.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(GameID), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetStartLevel(0)
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed})
	return g
}

// plainCell returns a cell that selects on click. The opening board may
// already hold specials left by its own stabilizing cascade.
func plainCell(t *testing.T, g *Game) engine.Addr {
	t.Helper()
	grid := g.engine.Grid()
	for _, a := range grid.Addrs() {
		if !grid.Get(a).IsSpecial() {
			return a
		}
	}
	t.Fatal("board holds only special tiles")
	return engine.Addr{}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0 s"},
		{45, "45 s"},
		{60, "1 min 0 s"},
		{65, "1 min 5 s"},
		{150, "2 min 30 s"},
		{-3, "0 s"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.expected {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestDeterministicPlay(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionConfirm),
		frame(core.ActionRight),
		frame(core.ActionConfirm),
		frame(core.ActionDown),
		frame(core.ActionConfirm),
		frame(core.ActionDown),
		frame(core.ActionConfirm),
		frame(core.ActionBooster),
		frame(core.ActionLeft),
		frame(core.ActionConfirm),
	}

	g1 := newTestGame(t, 5, 777)
	g2 := newTestGame(t, 5, 777)

	for i, in := range script {
		g1.Step(in)
		g2.Step(in)
		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("step %d diverged:\n%+v\nvs\n%+v", i, s1, s2)
		}
	}
}

func TestNewEngineFallsBackToDefaults(t *testing.T) {
	bad := config.DefaultMatch3Config()
	bad.Board.Rows = 2

	eng, cfg := newEngine(bad, 42)
	if eng == nil {
		t.Fatal("no engine built")
	}
	if cfg.Board.Rows != config.DefaultMatch3Config().Board.Rows {
		t.Errorf("rows = %d, want default", cfg.Board.Rows)
	}

	// The fallback draws from a fresh seed, so it matches a clean start.
	want, _ := newEngine(config.DefaultMatch3Config(), 42)
	if !eng.Grid().Equal(want.Grid()) {
		t.Errorf("fallback grid differs from seed 42:\n%s\nvs\n%s", eng.Grid(), want.Grid())
	}
}

func TestRunStartedOnReset(t *testing.T) {
	g := newTestGame(t, 30, 1)

	res := g.Step(core.NewInputFrame())
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventRunStarted {
		t.Fatalf("events = %+v, want RunStarted", res.Events)
	}

	res = g.Step(core.NewInputFrame())
	if len(res.Events) != 0 {
		t.Errorf("events should be drained, got %+v", res.Events)
	}
}

func TestLevelClock(t *testing.T) {
	g := newTestGame(t, 10, 2)

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if s := g.Snapshot(); s.TimeLeft != 59 {
		t.Fatalf("time left = %d, want 59", s.TimeLeft)
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if s := g.Snapshot(); s.TimeLeft != 59 {
		t.Errorf("clock ran while paused: %d", s.TimeLeft)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestTimeoutEndsRunAndReplayStartsNew(t *testing.T) {
	g := newTestGame(t, 1, 3)
	g.Step(core.NewInputFrame()) // drain RunStarted, 59 s left

	var finished *core.Event
	for i := 0; i < 59 && finished == nil; i++ {
		res := g.Step(core.NewInputFrame())
		for j := range res.Events {
			if res.Events[j].Kind == core.EventLevelFinished {
				finished = &res.Events[j]
			}
		}
	}

	if finished == nil || finished.Outcome != OutcomeGameOver || finished.Level != 0 {
		t.Fatalf("finished = %+v", finished)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	res := g.Step(frame(core.ActionRestart))
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventRunStarted {
		t.Errorf("events = %+v, want RunStarted", res.Events)
	}
	if s := g.Snapshot(); s.Level != 1 || s.Phase != engine.PhasePlaying.String() || s.RunScore != 0 {
		t.Errorf("after replay: %+v", s)
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, 30, 4)

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	if g.cursor != engine.A(0, 0) {
		t.Errorf("cursor = %v, want clamped at origin", g.cursor)
	}

	for range 20 {
		g.Step(frame(core.ActionRight))
	}
	g.Step(frame(core.ActionDown))
	if g.cursor != engine.A(1, 7) {
		t.Errorf("cursor = %v, want (1,7)", g.cursor)
	}
}

func TestConfirmSelectsCursorCell(t *testing.T) {
	g := newTestGame(t, 30, 5)
	target := plainCell(t, g)
	g.cursor = target

	g.Step(frame(core.ActionConfirm))

	sel, ok := g.engine.Selection()
	if !ok || sel != target {
		t.Errorf("selection = %v, %v, want %v", sel, ok, target)
	}
}

func TestMouseClickSelectsCell(t *testing.T) {
	g := newTestGame(t, 30, 6)
	target := plainCell(t, g)
	p := g.layout().cellOrigin(target)

	in := core.NewInputFrame()
	in.Click(p.X+1, p.Y)
	g.Step(in)

	if g.cursor != target {
		t.Errorf("cursor = %v, want %v", g.cursor, target)
	}
	if sel, ok := g.engine.Selection(); !ok || sel != target {
		t.Errorf("selection = %v, %v, want %v", sel, ok, target)
	}
}

func TestLayoutCellAt(t *testing.T) {
	g := newTestGame(t, 30, 7)
	l := g.layout()

	for _, a := range []engine.Addr{engine.A(0, 0), engine.A(7, 7), engine.A(3, 5)} {
		o := l.cellOrigin(a)
		for dx := 0; dx < cellWidth; dx++ {
			if got, ok := l.cellAt(core.Point{X: o.X + dx, Y: o.Y}); !ok || got != a {
				t.Errorf("cellAt(%d,%d) = %v, %v, want %v", o.X+dx, o.Y, got, ok, a)
			}
		}
	}

	f := l.frame()
	if _, ok := l.cellAt(core.Point{X: f.X, Y: f.Y}); ok {
		t.Error("frame corner should not map to a cell")
	}
	if _, ok := l.cellAt(core.Point{X: f.Right() - 1, Y: f.Bottom() - 1}); ok {
		t.Error("frame corner should not map to a cell")
	}
}

func TestStartLevel(t *testing.T) {
	SetStartLevel(2)
	g := newTestGame(t, 30, 8)

	if s := g.Snapshot(); s.Level != 2 || s.TimeLeft != 100 {
		t.Errorf("snapshot = %+v, want level 2 with 100 s", s)
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	SetDifficultyPreset("hard")
	g := newTestGame(t, 30, 9)

	if lvl := g.engine.Levels()[0]; lvl.TargetScore != 60 || lvl.MaxMoves != 16 {
		t.Errorf("level 1 = %+v, want hard scaling", lvl)
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := newTestGame(t, 30, 10)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	l := g.layout()
	grid := g.engine.Grid()
	for _, a := range grid.Addrs() {
		o := l.cellOrigin(a)
		if got := screen.Get(o.X+1, o.Y); got != grid.Get(a).Glyph() {
			t.Fatalf("cell %v drawn as %q, want %q", a, got, grid.Get(a).Glyph())
		}
	}
	if screen.Get(l.cellOrigin(engine.A(0, 0)).X, l.y+1) != '[' {
		t.Error("cursor bracket missing at origin")
	}
}
