package render

import (
	"math"
	"testing"

	"raycaster/internal/config"
	"raycaster/internal/sim"
	"raycaster/internal/system"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func TestViewportRecordFor(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 23, Width: 480, Height: 352}
	cases := []struct{ col, n, want int }{
		{0, 480, 0},
		{79, 480, 474},
		{40, 480, 240},
		{10, 20, 2},
		{100, 480, 479},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := vp.RecordFor(c.col, c.n); got != c.want {
			t.Errorf("RecordFor(%d, %d) = %d; want %d", c.col, c.n, got, c.want)
		}
	}
}

func TestViewportStripRows(t *testing.T) {
	vp := Viewport{Cols: 80, Rows: 20, Width: 480, Height: 400}
	cases := []struct {
		name        string
		height      float64
		top, bottom int
	}{
		{"half screen", 200, 5, 15},
		{"full screen", 400, 0, 20},
		{"taller than screen", 5000, 0, 20},
		{"infinite", math.Inf(1), 0, 20},
		{"tiny", 1, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top, bottom := vp.StripRows(tc.height)
			if top != tc.top || bottom != tc.bottom {
				t.Errorf("StripRows(%v) = (%d,%d); want (%d,%d)", tc.height, top, bottom, tc.top, tc.bottom)
			}
		})
	}
}

func TestHeadingGlyph(t *testing.T) {
	cases := []struct {
		heading float64
		want    string
	}{
		{0, "→"},
		{math.Pi / 2, "↓"},
		{math.Pi, "←"},
		{3 * math.Pi / 2, "↑"},
		{2*math.Pi - 0.1, "→"},
		{math.Pi / 4, "↘"},
	}
	for _, c := range cases {
		if got := headingGlyph(c.heading); got != c.want {
			t.Errorf("headingGlyph(%v) = %q; want %q", c.heading, got, c.want)
		}
	}
}

func TestDrawWallsColumns(t *testing.T) {
	ss := newTestScreen(t, 4, 11)
	r := NewRenderer(ss, 4, 100)
	records := []system.DrawRecord{
		{Column: 0, Height: 50, Color: system.Color{R: 255}},
		{Column: 1, Height: 100, Color: system.Color{G: 200}},
		{Column: 2, Height: 20, Color: system.Color{B: 255}},
		{Column: 3, Height: 1000, Color: system.Color{R: 200}},
	}
	r.DrawWalls(records)
	ss.Show()

	// View is 10 rows (one row is kept for the HUD).
	wantRows := [][2]int{{2, 7}, {0, 10}, {4, 6}, {0, 10}}
	for col, span := range wantRows {
		for row := 0; row < 10; row++ {
			mainc, _, style, _ := ss.GetContent(col, row)
			inWall := row >= span[0] && row < span[1]
			if inWall != (mainc == wallGlyph) {
				t.Errorf("col %d row %d: glyph %q, wall expected %v", col, row, mainc, inWall)
			}
			if inWall {
				fg, _, _ := style.Decompose()
				if fg != StripColor(records[col].Color) {
					t.Errorf("col %d row %d: fg %v; want %v", col, row, fg, StripColor(records[col].Color))
				}
			}
		}
	}
	_, _, style, _ := ss.GetContent(2, 0)
	if _, bg, _ := style.Decompose(); bg != ColorCeiling {
		t.Errorf("ceiling bg = %v; want %v", bg, ColorCeiling)
	}
	_, _, style, _ = ss.GetContent(2, 9)
	if _, bg, _ := style.Decompose(); bg != ColorFloor {
		t.Errorf("floor bg = %v; want %v", bg, ColorFloor)
	}
}

func TestDrawFrameWithMinimapAndHUD(t *testing.T) {
	ss := newTestScreen(t, 120, 30)
	s, err := sim.FromConfig(config.Default())
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	f, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	r := NewRenderer(ss, s.Config().ScreenWidth, s.Config().ScreenHeight)
	r.DrawFrame(f, s.Map(), "courtyard")

	// Observer at (240,176) sits in cell (5,7): minimap column 14.
	mainc, _, _, _ := ss.GetContent(14, 5)
	if string(mainc) != "↓" {
		t.Errorf("observer glyph = %q; want ↓", mainc)
	}
	// Top-left tile is border brick.
	_, _, style, _ := ss.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != tileColor(s.Map().At(0, 0)) {
		t.Errorf("border tile bg = %v", bg)
	}
	// HUD starts with the title on the last row.
	hud := ""
	for x := 0; x < 9; x++ {
		c, _, _, _ := ss.GetContent(x, 29)
		hud += string(c)
	}
	if hud != "courtyard" {
		t.Errorf("HUD = %q; want it to start with the title", hud)
	}
}

func TestDrawFrameWithoutMinimap(t *testing.T) {
	ss := newTestScreen(t, 60, 20)
	s, _ := sim.FromConfig(config.Default())
	f, _ := s.Tick()
	r := NewRenderer(ss, s.Config().ScreenWidth, s.Config().ScreenHeight)
	r.ShowMinimap = false
	r.DrawFrame(f, s.Map(), "x")

	_, _, style, _ := ss.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg == tileColor(s.Map().At(0, 0)) {
		t.Error("minimap drawn although disabled")
	}
}
