package game

import (
	"context"
	"fmt"
	"time"

	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/render"
	"raycaster/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// Game drives one simulation on one terminal screen.
type Game struct {
	screen   tcell.Screen
	sim      *sim.Simulation
	renderer *render.Renderer
	latch    *IntentLatch
	title    string
	interval time.Duration
	started  time.Time
	// SaveLog controls whether Run appends the session to the log file.
	SaveLog bool
}

// New builds a Game for an initialised screen. The caller owns the screen
// and must Fini it after Run returns.
func New(screen tcell.Screen, cfg config.Config) (*Game, error) {
	s, err := sim.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("start simulation: %w", err)
	}
	screen.HideCursor()
	return &Game{
		screen:   screen,
		sim:      s,
		renderer: render.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight),
		latch:    NewIntentLatch(cfg.HoldTicks),
		title:    sim.Title(cfg),
		interval: cfg.TickInterval(),
		SaveLog:  true,
	}, nil
}

// Run ticks the simulation at the configured rate until the player quits,
// ctx is cancelled, or the screen stops delivering events.
func (g *Game) Run(ctx context.Context) error {
	g.started = time.Now()
	defer g.finish()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	logging.Log.Infof("session started on %s", g.sim.Config().Map)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := g.Step(); err != nil {
				return err
			}
		}
	}
}

// HandleEvent applies one tcell event and reports whether the game should
// stop.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch action := keyToAction(ev); action {
		case ActionQuit:
			return true
		case ActionToggleMap:
			g.renderer.ShowMinimap = !g.renderer.ShowMinimap
		default:
			g.latch.Press(action)
		}
	}
	return false
}

// Step runs one tick and draws its frame.
func (g *Game) Step() error {
	g.sim.SetIntent(g.latch.Intent())
	frame, err := g.sim.Tick()
	if err != nil {
		logging.Log.Errorf("tick failed: %v", err)
		return err
	}
	g.latch.Decay()
	g.renderer.DrawFrame(frame, g.sim.Map(), g.title)
	return nil
}

// Simulation exposes the running simulation, mainly for tests.
func (g *Game) Simulation() *sim.Simulation { return g.sim }

func (g *Game) finish() {
	st := g.sim.Stats()
	logging.Log.Infof("session ended after %d ticks, walked %.1f units", st.Ticks, st.Distance)
	if !g.SaveLog {
		return
	}
	entry := SessionLog{
		Map:      g.sim.Config().Map,
		Seed:     g.sim.Config().Seed,
		Started:  g.started,
		Duration: time.Since(g.started).Round(time.Millisecond).String(),
		Stats:    st,
	}
	if err := saveSessionLog(entry); err != nil {
		logging.Log.Warningf("session log not saved: %v", err)
	}
}
