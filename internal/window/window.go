// Package window runs a simulation in a desktop window through ebiten. One
// ebiten tick is one simulation tick.
package window

import (
	"fmt"
	"math"

	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Window implements ebiten.Game over one simulation.
type Window struct {
	sim   *sim.Simulation
	cfg   config.Config
	title string
	held  heldIntent
	frame sim.Frame
	// ShowMinimap draws the overview in the top-left corner.
	ShowMinimap bool
}

// New builds the simulation cfg describes.
func New(cfg config.Config) (*Window, error) {
	s, err := sim.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("start simulation: %w", err)
	}
	return &Window{sim: s, cfg: cfg, title: sim.Title(cfg), ShowMinimap: true}, nil
}

// Title is the window caption.
func (w *Window) Title() string { return "raycaster: " + w.title }

// Simulation exposes the running simulation.
func (w *Window) Simulation() *sim.Simulation { return w.sim }

// Update reads key edges and advances the simulation one tick.
func (w *Window) Update() error {
	for key, a := range bindings {
		if inpututil.IsKeyJustPressed(key) {
			if quit := w.apply(a, true); quit {
				return ebiten.Termination
			}
		}
		if inpututil.IsKeyJustReleased(key) {
			w.apply(a, false)
		}
	}
	return w.step()
}

// apply records one key edge and reports whether it asks to quit.
func (w *Window) apply(a action, pressed bool) bool {
	switch {
	case a == actionQuit && pressed:
		return true
	case a == actionToggleMap && pressed:
		w.ShowMinimap = !w.ShowMinimap
	case pressed:
		w.held.press(a)
	default:
		w.held.release(a)
	}
	return false
}

func (w *Window) step() error {
	w.sim.SetIntent(w.held.intent)
	f, err := w.sim.Tick()
	if err != nil {
		logging.Log.Errorf("tick: %v", err)
		return err
	}
	w.frame = f
	return nil
}

// Draw paints ceiling, floor, one strip per record and the overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	width, height := float32(w.cfg.ScreenWidth), float32(w.cfg.ScreenHeight)
	vector.FillRect(screen, 0, 0, width, height/2, colorCeiling, false)
	vector.FillRect(screen, 0, height/2, width, height/2, colorFloor, false)

	for _, rec := range w.frame.Records {
		r := stripRect(rec, w.cfg.StripWidth, w.cfg.ScreenHeight)
		if r.H <= 0 {
			continue
		}
		vector.FillRect(screen, r.X, r.Y, r.W, r.H, stripColor(rec.Color), false)
	}

	if w.ShowMinimap {
		w.drawMinimap(screen)
	}
	p := w.frame.Pose
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  x %.0f y %.0f  %3.0f°  tick %d", w.title, p.X, p.Y, p.Heading*180/math.Pi, w.frame.Tick),
		4, w.cfg.ScreenHeight-16)
}

func (w *Window) drawMinimap(screen *ebiten.Image) {
	m := w.sim.Map()
	scale := w.cfg.MinimapScale
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			r := tileRect(m, row, col, scale)
			vector.FillRect(screen, r.X, r.Y, r.W, r.H, tileFill(m.At(row, col)), false)
		}
	}
	p := w.frame.Pose
	px, py := float32(p.X*scale), float32(p.Y*scale)
	for _, h := range w.frame.Hits {
		vector.StrokeLine(screen, px, py, float32(h.X*scale), float32(h.Y*scale), 1, colorRay, false)
	}
	o := w.sim.Observer()
	vector.DrawFilledCircle(screen, px, py, float32(max(o.Radius*scale, 1)), colorPlayer, true)
}

// Layout pins the logical screen to the projection plane so every ray
// owns StripWidth pixels regardless of the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.ScreenWidth, w.cfg.ScreenHeight
}
