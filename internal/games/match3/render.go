package match3

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/match-master/internal/core"
	"github.com/vovakirdan/match-master/internal/games/match3/engine"
)

const (
	cellWidth = 3 // "[★]"
	hudHeight = 3
	popupW    = 44
	popupH    = 7
)

// boardLayout places the board on screen. Mouse hit testing and rendering
// share it so a click always lands on the cell drawn under it.
type boardLayout struct {
	x, y       int // Top-left corner of the board frame
	rows, cols int
}

func (g *Game) layout() boardLayout {
	rows, cols := g.engine.Rows(), g.engine.Cols()
	w := cols*cellWidth + 2
	return boardLayout{
		x:    max(0, (g.runtime.ScreenW-w)/2),
		y:    hudHeight + 1,
		rows: rows,
		cols: cols,
	}
}

func (l boardLayout) frame() core.Rect {
	return core.NewRect(l.x, l.y, l.cols*cellWidth+2, l.rows+2)
}

// cellOrigin returns the screen position of the left bracket of a cell.
func (l boardLayout) cellOrigin(a engine.Addr) core.Point {
	return core.Point{X: l.x + 1 + a.Col*cellWidth, Y: l.y + 1 + a.Row}
}

// cells is the screen area covered by tiles, inside the frame.
func (l boardLayout) cells() core.Rect {
	return core.NewRect(l.x+1, l.y+1, l.cols*cellWidth, l.rows)
}

// cellAt maps a screen position to a board address.
func (l boardLayout) cellAt(p core.Point) (engine.Addr, bool) {
	area := l.cells()
	if !area.ContainsPoint(p) {
		return engine.Addr{}, false
	}
	return engine.A(p.Y-area.Y, (p.X-area.X)/cellWidth), true
}

func (g *Game) tooSmall(l boardLayout) bool {
	f := l.frame()
	return g.runtime.ScreenW < f.W || g.runtime.ScreenH < f.Bottom()+1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l := g.layout()
	if g.tooSmall(l) {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	st := g.engine.State()
	g.renderHUD(dst, st)
	g.renderBoard(dst, l)

	f := l.frame()
	footer := f.Bottom()
	if g.message != "" {
		dst.DrawTextCenteredColored(footer, g.message, core.ColorBrightYellow)
	}

	switch {
	case st.PopupVisible():
		g.renderPopup(dst, l, st)
	case st.Phase == engine.PhasePaused:
		g.renderPaused(dst, l)
	}
}

func (g *Game) renderHUD(dst *core.Screen, st engine.SessionState) {
	dst.DrawTextCenteredColored(0, "M A T C H   M A S T E R", core.ColorBrightMagenta)

	lvl := g.engine.Levels()[st.Level]
	info := fmt.Sprintf("Level %d/%d %s  Score %d/%d  Moves %d/%d  Time %s",
		st.Level+1, st.LevelCount, lvl.Name,
		st.Score, st.TargetScore,
		st.Moves, st.MaxMoves,
		FormatTime(st.TimeRemaining))
	dst.DrawTextCentered(1, info)

	threshold := g.engine.Config().StarThreshold
	var bar strings.Builder
	for i := 0; i < threshold; i++ {
		if i < st.StarCount {
			bar.WriteRune('★')
		} else {
			bar.WriteRune('☆')
		}
	}
	booster := "Booster charging"
	color := core.ColorGray
	if st.BoosterEnabled {
		booster = "Booster READY [X]"
		color = core.ColorBrightGreen
	}
	line := fmt.Sprintf("Stars %s  %s  Run %d", bar.String(), booster, g.RunScore())
	dst.DrawTextCenteredColored(2, line, color)

	f := g.layout().frame()
	dst.DrawHLine(f.X, hudHeight, f.W, '─')
}

func (g *Game) renderBoard(dst *core.Screen, l boardLayout) {
	dst.DrawBoxColored(l.frame(), core.ColorGray)

	sel, hasSel := g.engine.Selection()
	grid := g.engine.Grid()
	for _, a := range grid.Addrs() {
		cell := grid.Get(a)
		o := l.cellOrigin(a)

		glyph := core.Cell{Rune: cell.Glyph(), Color: coreColor(cell.Color())}
		left := core.Cell{Rune: ' '}
		right := core.Cell{Rune: ' '}

		if g.flash[a] > 0 {
			glyph.Reverse = true
			glyph.Color = core.ColorBrightYellow
		}
		if hasSel && sel == a {
			glyph.Reverse = true
			left.Reverse = true
			right.Reverse = true
		}
		if a == g.cursor {
			left = core.Cell{Rune: '[', Color: core.ColorBrightWhite, Reverse: left.Reverse}
			right = core.Cell{Rune: ']', Color: core.ColorBrightWhite, Reverse: right.Reverse}
		}

		dst.SetCell(o.X, o.Y, left)
		dst.SetCell(o.X+1, o.Y, glyph)
		dst.SetCell(o.X+2, o.Y, right)
	}
}

func (g *Game) renderPopup(dst *core.Screen, l boardLayout, st engine.SessionState) {
	var lines []string
	color := core.ColorBrightGreen

	switch st.Popup {
	case engine.PopupLevelComplete:
		lines = []string{
			"You completed the level!",
			fmt.Sprintf("Score %d in %d moves", st.Score, st.Moves),
			"[N] Next level   [R] Play again",
		}
	case engine.PopupAllLevelsComplete:
		lines = []string{
			"Congratulations!",
			"You completed all levels!",
			fmt.Sprintf("Run score %d", g.RunScore()),
			"[R] Play again from level 1",
		}
	default:
		color = core.ColorBrightRed
		lines = []string{
			"Game Over!",
			"You reached the maximum moves or time.",
			"[R] Play again",
		}
	}
	drawDialog(dst, l, lines, color)
}

func (g *Game) renderPaused(dst *core.Screen, l boardLayout) {
	drawDialog(dst, l, []string{"PAUSED", "[P] Resume   [Q] Quit"}, core.ColorBrightCyan)
}

// drawDialog draws a framed message box centered over the board.
func drawDialog(dst *core.Screen, l boardLayout, lines []string, c core.Color) {
	w := min(popupW, dst.Width())
	h := max(popupH, len(lines)+2)
	cx, cy := l.frame().Center()
	box := core.NewRect(max(0, cx-w/2), max(0, cy-h/2), w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)

	top := box.Y + (h-len(lines))/2
	for i, line := range lines {
		x := box.X + (w-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, top+i, line, c)
	}
}

// coreColor maps palette colors to terminal colors.
func coreColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorBrightRed
	case engine.ColorBlue:
		return core.ColorBrightBlue
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorYellow:
		return core.ColorBrightYellow
	case engine.ColorPurple:
		return core.ColorMagenta
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorSky:
		return core.ColorBrightCyan
	case engine.ColorPink:
		return core.ColorPink
	default:
		return core.ColorDefault
	}
}
