// Package sim owns one running simulation: the map, the observer, and the
// fixed per-column buffers that each tick overwrites.
package sim

import (
	"fmt"

	"raycaster/assets"
	"raycaster/internal/component"
	"raycaster/internal/config"
	"raycaster/internal/gamemap"
	"raycaster/internal/generate"
	"raycaster/internal/geom"
	"raycaster/internal/system"
)

// Frame is the output of one tick. Hits and Records alias the simulation's
// buffers and are overwritten by the next Tick.
type Frame struct {
	Tick    uint64
	Pose    component.Pose
	Moved   system.MoveResult
	Hits    []system.Hit
	Records []system.DrawRecord
}

// Stats are cumulative counters for one simulation.
type Stats struct {
	Ticks        uint64  `json:"ticks"`
	Distance     float64 `json:"distance"`
	BlockedSteps int     `json:"blocked_steps"`
}

// Simulation is the single-writer context for one observer on one map.
// Tick must not run while another goroutine reads the previous Frame.
type Simulation struct {
	cfg       config.Config
	gmap      *gamemap.GameMap
	observer  component.Observer
	projector system.Projector
	hits      []system.Hit
	records   []system.DrawRecord
	stats     Stats
}

// New places an observer at pose on m using cfg's speeds and screen.
func New(cfg config.Config, m *gamemap.GameMap, pose component.Pose) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:  cfg,
		gmap: m,
		observer: component.Observer{
			Pose:          component.Pose{X: pose.X, Y: pose.Y, Heading: geom.NormalizeAngle(pose.Heading)},
			Radius:        cfg.Radius,
			MoveSpeed:     cfg.MoveSpeed,
			RotationSpeed: cfg.RotationSpeed,
		},
		projector: system.Projector{
			ScreenWidth:  float64(cfg.ScreenWidth),
			ScreenHeight: float64(cfg.ScreenHeight),
			FOV:          cfg.FOV,
			TileSize:     m.TileSize,
		},
		hits:    system.NewHitBuffer(cfg.NumRays()),
		records: make([]system.DrawRecord, cfg.NumRays()),
	}
	if err := system.CheckSpawn(&s.observer, m); err != nil {
		return nil, err
	}
	return s, nil
}

// FromConfig loads cfg.Map from the built-in layouts, or generates one from
// cfg.Seed when it names the maze, and spawns the observer at the layout's
// start point.
func FromConfig(cfg config.Config) (*Simulation, error) {
	if cfg.Map == generate.MapName {
		layout, err := generate.Generate(generate.DefaultConfig(cfg.Seed))
		if err != nil {
			return nil, err
		}
		m, err := layout.Map(cfg.TileSize)
		if err != nil {
			return nil, fmt.Errorf("map %s seed %d: %w", cfg.Map, cfg.Seed, err)
		}
		x, y := layout.Spawn(cfg.TileSize)
		return New(cfg, m, component.Pose{X: x, Y: y})
	}
	def, err := assets.LookupMap(cfg.Map)
	if err != nil {
		return nil, err
	}
	m, err := gamemap.Parse(def.Layout, cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", def.Name, err)
	}
	pose := component.Pose{
		X:       def.SpawnX * cfg.TileSize,
		Y:       def.SpawnY * cfg.TileSize,
		Heading: def.Heading,
	}
	return New(cfg, m, pose)
}

// Title is the display name of cfg's map.
func Title(cfg config.Config) string {
	if cfg.Map == generate.MapName {
		return fmt.Sprintf("Maze #%d", cfg.Seed)
	}
	if def, err := assets.LookupMap(cfg.Map); err == nil {
		return def.Title
	}
	return cfg.Map
}

// Map returns the shared, read-only grid.
func (s *Simulation) Map() *gamemap.GameMap { return s.gmap }

// Config returns the settings the simulation was built with.
func (s *Simulation) Config() config.Config { return s.cfg }

// Observer returns a copy of the observer's current state.
func (s *Simulation) Observer() component.Observer { return s.observer }

// Stats returns the cumulative counters.
func (s *Simulation) Stats() Stats { return s.stats }

// SetIntent replaces the intent consumed by the next Tick.
func (s *Simulation) SetIntent(in component.Intent) {
	s.observer.Intent = in.Clamp()
}

// Tick advances the observer once, recasts every column and projects the
// hits.
func (s *Simulation) Tick() (Frame, error) {
	before := s.observer.Pose
	moved := system.Advance(&s.observer, s.gmap)
	switch moved {
	case system.MoveOK:
		s.stats.Distance += geom.Distance(before.X, before.Y, s.observer.X, s.observer.Y)
	case system.MoveBlocked:
		s.stats.BlockedSteps++
	}
	s.stats.Ticks++

	system.CastAll(s.observer.Pose, s.gmap, s.cfg.FOV, s.hits)
	if err := s.projector.Project(s.hits, s.observer.Heading, s.records); err != nil {
		return Frame{}, fmt.Errorf("tick %d: %w", s.stats.Ticks, err)
	}
	return Frame{
		Tick:    s.stats.Ticks,
		Pose:    s.observer.Pose,
		Moved:   moved,
		Hits:    s.hits,
		Records: s.records,
	}, nil
}
