package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y := range 4 {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, want blank", y, row)
		}
	}
}

func TestScreenCellsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	// Writes outside the buffer are dropped, reads return a blank cell.
	s.Set(-1, 0, 'x')
	s.SetColored(4, 0, 'x', ColorRed)
	s.SetCell(0, 2, Cell{Rune: 'x', Reverse: true})

	if strings.Contains(s.String(), "x") {
		t.Errorf("out-of-bounds write leaked:\n%s", s.String())
	}
	if c := s.GetCell(10, 10); c != (Cell{Rune: ' '}) {
		t.Errorf("GetCell out of bounds = %+v", c)
	}
	if s.Row(-1) != "    " {
		t.Errorf("Row(-1) = %q", s.Row(-1))
	}
}

func TestScreenStyledTiles(t *testing.T) {
	s := NewScreen(9, 1)

	s.SetCell(0, 0, Cell{Rune: '['})
	s.SetColored(1, 0, '★', ColorBrightRed)
	s.SetCell(2, 0, Cell{Rune: ']'})
	s.SetCell(4, 0, Cell{Rune: '♣', Color: ColorBrightBlue, Reverse: true})

	if got := s.GetCell(1, 0); got.Rune != '★' || got.Color != ColorBrightRed || got.Reverse {
		t.Errorf("tile cell = %+v", got)
	}
	if got := s.GetCell(4, 0); !got.Reverse {
		t.Errorf("selected cell should be reversed: %+v", got)
	}
	if s.Get(1, 0) != '★' {
		t.Errorf("Get(1, 0) = %q", s.Get(1, 0))
	}
	if row := s.Row(0); row != "[★] ♣    " {
		t.Errorf("row = %q", row)
	}

	s.Clear()
	if s.GetCell(4, 0) != (Cell{Rune: ' '}) {
		t.Error("Clear() should drop styling")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "left aligned",
			draw: func(s *Screen) { s.DrawText(1, 0, "Score") },
			want: " Score    ",
		},
		{
			name: "clipped",
			draw: func(s *Screen) { s.DrawText(7, 0, "Moves") },
			want: "       Mov",
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(0, "Go") },
			want: "    Go    ",
		},
		{
			name: "centered counts runes",
			draw: func(s *Screen) { s.DrawTextCentered(0, "★★") },
			want: "    ★★    ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.want {
				t.Errorf("row = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenTextColor(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawTextCenteredColored(0, "READY", ColorBrightGreen)

	x := strings.Index(s.Row(0), "READY")
	if x < 0 {
		t.Fatalf("text missing: %q", s.Row(0))
	}
	for i := range 5 {
		if c := s.GetCell(x+i, 0); c.Color != ColorBrightGreen {
			t.Errorf("cell %d color = %v", x+i, c.Color)
		}
	}
}

func TestScreenBoardFrame(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawBoxColored(NewRect(0, 0, 8, 4), ColorGray)

	want := []string{
		"┌──────┐",
		"│      │",
		"│      │",
		"└──────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("frame should carry its color")
	}
}

func TestScreenDialogFill(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 1, "tiles!")

	// Popups blank the area under them before drawing the box.
	s.DrawRect(NewRect(1, 0, 4, 3), ' ')
	s.DrawBox(NewRect(1, 0, 4, 3))

	want := []string{" ┌──┐ ", "t│  │!", " └──┘ "}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestScreenSeparator(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 4, '─')

	if got := s.Row(0); got != " ──── " {
		t.Errorf("row = %q", got)
	}
}

func TestScreenStringJoinsRows(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	if got := s.String(); got != "ab \ncd " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '♦', ColorGreen)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != '♦' || c.Color != ColorGreen {
		t.Errorf("content lost on grow: %+v", c)
	}

	s.Resize(1, 1)
	if s.Row(0) != " " {
		t.Errorf("shrunk row = %q", s.Row(0))
	}

	s.Resize(1, 1) // no-op
	if s.Width() != 1 {
		t.Error("same-size resize changed the screen")
	}
}
