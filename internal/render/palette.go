package render

import (
	"raycaster/internal/gamemap"
	"raycaster/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Fixed scene colours.
var (
	ColorCeiling = tcell.NewRGBColor(0x41, 0x41, 0x41)
	ColorFloor   = tcell.NewRGBColor(0x81, 0x81, 0x81)
	ColorHUD     = tcell.ColorLightYellow
	ColorSight   = tcell.NewRGBColor(0x60, 0x20, 0x20)
	ColorPlayer  = tcell.ColorRed
)

// wallGlyph fills a whole terminal cell.
const wallGlyph = '█'

// StripColor converts a projected colour to a terminal colour.
func StripColor(c system.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tileColor is the overview colour of one map cell.
func tileColor(m gamemap.Material) tcell.Color {
	if !m.IsWall() {
		return tcell.ColorWhite
	}
	c, err := system.Shade(m, true)
	if err != nil {
		return tcell.ColorGray
	}
	return StripColor(c)
}

// headingGlyphs are indexed by heading in eighths of a turn, starting at +x
// and running clockwise on screen (y grows downward).
var headingGlyphs = [8]string{"→", "↘", "↓", "↙", "←", "↖", "↑", "↗"}
