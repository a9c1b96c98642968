package render

import (
	"math"

	"raycaster/internal/component"
	"raycaster/internal/gamemap"
	"raycaster/internal/geom"
	"raycaster/internal/sim"
	"raycaster/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of terminal rows kept below the 3D view.
const hudRows = 1

// Renderer draws projected frames onto a tcell screen.
type Renderer struct {
	screen       tcell.Screen
	screenWidth  int // projection plane, pixels
	screenHeight int
	ShowMinimap  bool
}

// NewRenderer creates a Renderer for a projection plane of the given size.
func NewRenderer(screen tcell.Screen, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		screen:       screen,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		ShowMinimap:  true,
	}
}

// Viewport returns the current mapping from projection plane to terminal.
func (r *Renderer) Viewport() Viewport {
	w, h := r.screen.Size()
	return Viewport{
		Cols:   w,
		Rows:   max(h-hudRows, 0),
		Width:  r.screenWidth,
		Height: r.screenHeight,
	}
}

// DrawFrame clears the screen, draws one tick's output and shows it.
func (r *Renderer) DrawFrame(f sim.Frame, m *gamemap.GameMap, title string) {
	r.screen.Clear()
	r.DrawWalls(f.Records)
	if r.ShowMinimap {
		r.DrawMinimap(m, f.Pose, f.Hits)
	}
	r.DrawHUD(title, f.Tick, f.Pose, f.Moved)
	r.screen.Show()
}

// DrawWalls paints ceiling, wall strip and floor for every terminal column.
func (r *Renderer) DrawWalls(records []system.DrawRecord) {
	vp := r.Viewport()
	ceiling := tcell.StyleDefault.Background(ColorCeiling)
	floor := tcell.StyleDefault.Background(ColorFloor)

	for col := 0; col < vp.Cols; col++ {
		if len(records) == 0 {
			break
		}
		rec := records[vp.RecordFor(col, len(records))]
		top, bottom := vp.StripRows(rec.Height)
		wall := tcell.StyleDefault.Foreground(StripColor(rec.Color)).Background(tcell.ColorBlack)
		for row := 0; row < top; row++ {
			r.screen.SetContent(col, row, ' ', nil, ceiling)
		}
		for row := top; row < bottom; row++ {
			r.screen.SetContent(col, row, wallGlyph, nil, wall)
		}
		for row := bottom; row < vp.Rows; row++ {
			r.screen.SetContent(col, row, ' ', nil, floor)
		}
	}
}

// DrawMinimap draws the overview grid in the top-left corner, two terminal
// columns per tile, with the cells crossed by sight lines tinted and the
// observer shown as a heading arrow.
func (r *Renderer) DrawMinimap(m *gamemap.GameMap, pose component.Pose, hits []system.Hit) {
	lit := sightCells(m, pose, hits)
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			mat := m.At(row, col)
			style := tcell.StyleDefault.Background(tileColor(mat))
			if !mat.IsWall() && lit[[2]int{row, col}] {
				style = tcell.StyleDefault.Background(ColorSight)
			}
			r.putGlyph(col*2, row, "  ", style)
		}
	}
	prow := int(math.Floor(pose.Y / m.TileSize))
	pcol := int(math.Floor(pose.X / m.TileSize))
	if m.InBounds(prow, pcol) {
		style := tcell.StyleDefault.Foreground(ColorPlayer).Background(ColorSight)
		r.putGlyph(pcol*2, prow, headingGlyph(pose.Heading), style)
	}
}

// sightCells collects the open cells each ray passes through on its way to
// its hit point, sampled at half-tile steps.
func sightCells(m *gamemap.GameMap, pose component.Pose, hits []system.Hit) map[[2]int]bool {
	lit := make(map[[2]int]bool)
	step := m.TileSize / 2
	// One sight line per few columns is plenty at this resolution.
	stride := max(len(hits)/32, 1)
	for i := 0; i < len(hits); i += stride {
		h := hits[i]
		if math.IsInf(h.Distance, 0) {
			continue
		}
		sin, cos := math.Sincos(h.Angle)
		for d := 0.0; d < h.Distance; d += step {
			x, y := pose.X+cos*d, pose.Y+sin*d
			lit[[2]int{int(y / m.TileSize), int(x / m.TileSize)}] = true
		}
	}
	return lit
}

// headingGlyph picks the arrow closest to heading.
func headingGlyph(heading float64) string {
	eighth := geom.Tau / 8
	i := int(math.Floor(geom.NormalizeAngle(heading+eighth/2) / eighth))
	return headingGlyphs[i%len(headingGlyphs)]
}

// putGlyph draws a glyph at (x, y), padding a narrow glyph to the two
// columns a minimap tile occupies.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	col := x
	for _, ch := range glyph {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	for ; col < x+2; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
