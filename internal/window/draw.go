package window

import (
	"image/color"

	"raycaster/internal/gamemap"
	"raycaster/internal/system"
)

var (
	colorCeiling = color.RGBA{0x41, 0x41, 0x41, 0xff}
	colorFloor   = color.RGBA{0x81, 0x81, 0x81, 0xff}
	colorOpen    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorWall    = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorRay     = color.RGBA{0xff, 0x00, 0x00, 0x4c}
	colorPlayer  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// rect is a float box in screen pixels.
type rect struct {
	X, Y, W, H float32
}

// stripRect is the on-screen box of one projected column. An empty box
// means the strip has no visible rows.
func stripRect(rec system.DrawRecord, stripWidth, screenHeight int) rect {
	top, bottom := rec.Span(screenHeight)
	return rect{
		X: float32(rec.Column * stripWidth),
		Y: float32(top),
		W: float32(stripWidth),
		H: float32(bottom - top),
	}
}

func stripColor(c system.Color) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

// tileRect is cell (row, col) of m on the minimap.
func tileRect(m *gamemap.GameMap, row, col int, scale float64) rect {
	t := m.TileSize * scale
	return rect{
		X: float32(float64(col) * t),
		Y: float32(float64(row) * t),
		W: float32(t),
		H: float32(t),
	}
}

func tileFill(mat gamemap.Material) color.RGBA {
	if mat.IsWall() {
		return colorWall
	}
	return colorOpen
}
