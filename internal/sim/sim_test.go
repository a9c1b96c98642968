package sim

import (
	"errors"
	"math"
	"testing"

	"raycaster/internal/component"
	"raycaster/internal/config"
	"raycaster/internal/gamemap"
	"raycaster/internal/generate"
	"raycaster/internal/system"
)

func newCourtyard(t *testing.T) *Simulation {
	t.Helper()
	s, err := FromConfig(config.Default())
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	return s
}

func TestFromConfigSpawn(t *testing.T) {
	s := newCourtyard(t)
	o := s.Observer()
	if o.X != 240 || o.Y != 176 || o.Heading != math.Pi/2 {
		t.Errorf("spawn pose = %+v; want (240,176) heading π/2", o.Pose)
	}
	if o.MoveSpeed != 2 || o.Radius != 3 {
		t.Errorf("observer speeds not taken from config: %+v", o)
	}
}

func TestFromConfigUnknownMap(t *testing.T) {
	cfg := config.Default()
	cfg.Map = "nowhere"
	if _, err := FromConfig(cfg); err == nil {
		t.Error("FromConfig accepted an unknown map")
	}
}

func TestFromConfigMaze(t *testing.T) {
	cfg := config.Default()
	cfg.Map = generate.MapName
	cfg.Seed = 11
	a, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	b, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if a.Observer().Pose != b.Observer().Pose {
		t.Errorf("same seed spawned at %+v and %+v", a.Observer().Pose, b.Observer().Pose)
	}
	if a.Map().HasWall(a.Observer().X, a.Observer().Y) {
		t.Error("maze spawn is inside a wall")
	}
	if _, err := a.Tick(); err != nil {
		t.Errorf("Tick on maze: %v", err)
	}
}

func TestNewRejectsBlockedSpawn(t *testing.T) {
	m, err := gamemap.Parse("111\n101\n111", 32)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = New(config.Default(), m, component.Pose{X: 5, Y: 5})
	if !errors.Is(err, system.ErrSpawnBlocked) {
		t.Errorf("New err = %v; want ErrSpawnBlocked", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	m, _ := gamemap.Parse("111\n101\n111", 32)
	cfg := config.Default()
	cfg.FOV = 0
	if _, err := New(cfg, m, component.Pose{X: 48, Y: 48}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New err = %v; want config.ErrInvalid", err)
	}
}

func TestTickProducesOneRecordPerColumn(t *testing.T) {
	s := newCourtyard(t)
	f, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	n := s.Config().NumRays()
	if len(f.Hits) != n || len(f.Records) != n {
		t.Fatalf("frame has %d hits, %d records; want %d", len(f.Hits), len(f.Records), n)
	}
	for i, r := range f.Records {
		if r.Column != i {
			t.Fatalf("record %d has column %d", i, r.Column)
		}
		if !(r.Height > 0) {
			t.Fatalf("record %d height %v", i, r.Height)
		}
	}
	if f.Tick != 1 || f.Moved != system.MoveIdle {
		t.Errorf("frame tick=%d moved=%v; want 1, idle", f.Tick, f.Moved)
	}
}

func TestTickReusesBuffers(t *testing.T) {
	s := newCourtyard(t)
	a, _ := s.Tick()
	s.SetIntent(component.Intent{Turn: 1})
	b, _ := s.Tick()
	if &a.Hits[0] != &b.Hits[0] || &a.Records[0] != &b.Records[0] {
		t.Error("Tick allocated new buffers instead of overwriting")
	}
}

func TestTickMovesAndCounts(t *testing.T) {
	s := newCourtyard(t)
	s.SetIntent(component.Intent{Walk: 1})
	f, err := s.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if f.Moved != system.MoveOK {
		t.Fatalf("Moved = %v; want ok", f.Moved)
	}
	if math.Abs(f.Pose.Y-178) > 1e-9 {
		t.Errorf("y = %v; want 178 after one step down", f.Pose.Y)
	}

	// Walk into the bottom wall until blocked.
	for range 200 {
		if f, _ = s.Tick(); f.Moved == system.MoveBlocked {
			break
		}
	}
	st := s.Stats()
	if st.BlockedSteps == 0 {
		t.Fatal("never blocked walking into a wall")
	}
	if st.Distance <= 0 || st.Ticks < 2 {
		t.Errorf("stats = %+v", st)
	}
	if s.Map().HasWall(f.Pose.X, f.Pose.Y) {
		t.Errorf("observer ended inside a wall at (%v,%v)", f.Pose.X, f.Pose.Y)
	}
}

func TestSetIntentClamps(t *testing.T) {
	s := newCourtyard(t)
	s.SetIntent(component.Intent{Turn: 4, Walk: -9})
	if got := s.Observer().Intent; got != (component.Intent{Turn: 1, Walk: -1}) {
		t.Errorf("intent = %+v", got)
	}
}

func TestIndependentSimulations(t *testing.T) {
	a := newCourtyard(t)
	b := newCourtyard(t)
	a.SetIntent(component.Intent{Walk: 1})
	a.Tick()
	b.Tick()
	if a.Observer().Pose == b.Observer().Pose {
		t.Error("simulations share observer state")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		seed int64
		want string
	}{
		{"courtyard", 0, "The Courtyard"},
		{generate.MapName, 5, "Maze #5"},
		{"nowhere", 0, "nowhere"},
	}
	for _, tt := range tests {
		cfg := config.Default()
		cfg.Map, cfg.Seed = tt.name, tt.seed
		if got := Title(cfg); got != tt.want {
			t.Errorf("Title(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}
