// Package engine implements the Match Master grid simulation: match detection,
// cascade resolution, special tiles, the booster and the level state machine.
// This package is UI-agnostic and deterministic for a given random Source.
package engine

import "strings"

// Symbol identifies one tile face from the fixed palette.
type Symbol uint8

const (
	SymbolStar Symbol = iota
	SymbolClub
	SymbolDiamond
	SymbolSpade
	SymbolHeart
	SymbolSun
	SymbolUmbrella
	SymbolNote
	SymbolCount // Sentinel value for iteration
)

// StarSymbol is the symbol whose clears charge the booster.
const StarSymbol = SymbolStar

// Color is the display color of a symbol.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorSky
	ColorPink
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorSky:
		return "sky"
	case ColorPink:
		return "pink"
	default:
		return "none"
	}
}

type symbolInfo struct {
	name  string
	glyph rune
	color Color
	hex   string
}

// symbolTable is the immutable palette, indexed by Symbol.
var symbolTable = [SymbolCount]symbolInfo{
	SymbolStar:     {name: "star", glyph: '★', color: ColorRed, hex: "#fa3928"},
	SymbolClub:     {name: "club", glyph: '♣', color: ColorBlue, hex: "#2832fa"},
	SymbolDiamond:  {name: "diamond", glyph: '♦', color: ColorGreen, hex: "#239107"},
	SymbolSpade:    {name: "spade", glyph: '♠', color: ColorYellow, hex: "#f0f71b"},
	SymbolHeart:    {name: "heart", glyph: '♥', color: ColorPurple, hex: "#94218a"},
	SymbolSun:      {name: "sun", glyph: '☀', color: ColorOrange, hex: "#ffcc00"},
	SymbolUmbrella: {name: "umbrella", glyph: '☂', color: ColorSky, hex: "#1e90ff"},
	SymbolNote:     {name: "note", glyph: '♫', color: ColorPink, hex: "#ff1493"},
}

// Symbols returns every symbol of the palette in table order.
func Symbols() []Symbol {
	out := make([]Symbol, SymbolCount)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Valid reports whether s belongs to the palette.
func (s Symbol) Valid() bool {
	return s < SymbolCount
}

// String returns the symbol name.
func (s Symbol) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return symbolTable[s].name
}

// Glyph returns the character used to draw the symbol.
func (s Symbol) Glyph() rune {
	if !s.Valid() {
		return '?'
	}
	return symbolTable[s].glyph
}

// Color returns the display color of the symbol.
func (s Symbol) Color() Color {
	if !s.Valid() {
		return ColorNone
	}
	return symbolTable[s].color
}

// Hex returns the symbol's color as a "#rrggbb" string.
func (s Symbol) Hex() string {
	if !s.Valid() {
		return "#ffffff"
	}
	return symbolTable[s].hex
}

// ParseSymbol resolves a symbol from its name or glyph.
func ParseSymbol(v string) (Symbol, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, info := range symbolTable {
		if v == info.name || v == string(info.glyph) {
			return Symbol(i), true
		}
	}
	return 0, false
}
