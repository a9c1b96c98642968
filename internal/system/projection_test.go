package system

import (
	"errors"
	"math"
	"testing"

	"raycaster/internal/component"
	"raycaster/internal/gamemap"
	"raycaster/internal/geom"
)

func defaultProjector() Projector {
	return Projector{ScreenWidth: 480, ScreenHeight: 352, FOV: geom.Radians(60), TileSize: 32}
}

func relClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestPlaneDistance(t *testing.T) {
	p := defaultProjector()
	want := 240 / math.Tan(math.Pi/6)
	if !relClose(p.PlaneDistance(), want) {
		t.Errorf("PlaneDistance = %v; want %v", p.PlaneDistance(), want)
	}
}

func TestStripHeightIdentity(t *testing.T) {
	p := defaultProjector()
	plane := p.PlaneDistance()
	for _, d := range []float64{0.5, 1, 16, 32, 100.25, 999} {
		want := (p.TileSize / d) * plane
		if got := p.StripHeight(d); !relClose(got, want) {
			t.Errorf("StripHeight(%v) = %v; want %v", d, got, want)
		}
	}
}

func TestShade(t *testing.T) {
	cases := []struct {
		m        gamemap.Material
		vertical bool
		want     Color
	}{
		{gamemap.MaterialBrick, true, Color{R: 255}},
		{gamemap.MaterialBrick, false, Color{R: 200}},
		{gamemap.MaterialMoss, true, Color{G: 255}},
		{gamemap.MaterialMoss, false, Color{G: 200}},
		{gamemap.MaterialSlate, true, Color{B: 255}},
		{gamemap.MaterialSlate, false, Color{B: 200}},
	}
	for _, c := range cases {
		got, err := Shade(c.m, c.vertical)
		if err != nil {
			t.Fatalf("Shade(%v, %v): %v", c.m, c.vertical, err)
		}
		if got != c.want {
			t.Errorf("Shade(%v, %v) = %+v; want %+v", c.m, c.vertical, got, c.want)
		}
	}
	for _, m := range []gamemap.Material{gamemap.MaterialEmpty, 4, 200} {
		if _, err := Shade(m, true); !errors.Is(err, ErrNoWall) {
			t.Errorf("Shade(%v) err = %v; want ErrNoWall", m, err)
		}
	}
}

func TestProjectRecord(t *testing.T) {
	p := defaultProjector()
	hits := []Hit{
		{Angle: 0, Distance: 64, Material: gamemap.MaterialMoss, Vertical: true},
		{Angle: 0.25, Distance: 100, Material: gamemap.MaterialSlate},
	}
	out := make([]DrawRecord, 2)
	if err := p.Project(hits, 0, out); err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i, h := range hits {
		r := out[i]
		d := h.Distance * math.Cos(h.Angle)
		if r.Column != i {
			t.Errorf("record %d Column = %d", i, r.Column)
		}
		if !relClose(r.Distance, d) {
			t.Errorf("record %d Distance = %v; want %v", i, r.Distance, d)
		}
		if !relClose(r.Height, p.StripHeight(d)) {
			t.Errorf("record %d Height = %v; want %v", i, r.Height, p.StripHeight(d))
		}
		if !relClose(r.Top, 176-r.Height/2) {
			t.Errorf("record %d Top = %v; want %v", i, r.Top, 176-r.Height/2)
		}
	}
	if out[0].Color != (Color{G: 255}) || out[1].Color != (Color{B: 200}) {
		t.Errorf("colors = %+v, %+v", out[0].Color, out[1].Color)
	}
}

func TestProjectRejectsMissingWall(t *testing.T) {
	p := defaultProjector()
	hits := []Hit{
		{Distance: 10, Material: gamemap.MaterialBrick},
		{Distance: math.Inf(1), Material: gamemap.MaterialEmpty},
	}
	err := p.Project(hits, 0, make([]DrawRecord, 2))
	if !errors.Is(err, ErrNoWall) {
		t.Errorf("Project err = %v; want ErrNoWall", err)
	}
}

func TestProjectShortBuffer(t *testing.T) {
	p := defaultProjector()
	hits := make([]Hit, 3)
	if err := p.Project(hits, 0, make([]DrawRecord, 2)); err == nil {
		t.Error("Project into a short buffer should fail")
	}
}

func TestFisheyeCorrectionSymmetric(t *testing.T) {
	m := boxMap(t, 10, 10)
	p := Projector{ScreenWidth: 4, ScreenHeight: 352, FOV: math.Pi / 3, TileSize: 32}
	pose := component.Pose{X: 48, Y: 160, Heading: 0}
	hits := NewHitBuffer(4)
	CastAll(pose, m, p.FOV, hits)

	// Rays 1 and 3 sit π/12 either side of the heading; ray 2 is the center.
	left, center, right := hits[1], hits[2], hits[3]
	for _, h := range []Hit{left, center, right} {
		if !h.Vertical || h.Material != gamemap.MaterialBrick {
			t.Fatalf("hit %+v; want vertical-line brick on the right wall", h)
		}
	}
	if left.Distance <= center.Distance {
		t.Errorf("off-center raw distance %v should exceed center %v", left.Distance, center.Distance)
	}

	dl := CorrectedDistance(left, pose.Heading)
	dr := CorrectedDistance(right, pose.Heading)
	if !relClose(dl, dr) || !relClose(dl, center.Distance) {
		t.Errorf("corrected distances left=%v right=%v center=%v; want all equal", dl, dr, center.Distance)
	}

	out := make([]DrawRecord, len(hits))
	if err := p.Project(hits, pose.Heading, out); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !relClose(out[1].Height, out[3].Height) {
		t.Errorf("strip heights %v and %v differ", out[1].Height, out[3].Height)
	}
}

func TestDrawRecordSpan(t *testing.T) {
	cases := []struct {
		name        string
		height      float64
		top, bottom int
	}{
		{"short strip centered", 100, 126, 226},
		{"taller than screen", 1000, 0, 352},
		{"infinite", math.Inf(1), 0, 352},
		{"zero", 0, 176, 176},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top, bottom := DrawRecord{Height: tc.height}.Span(352)
			if top != tc.top || bottom != tc.bottom {
				t.Errorf("Span = (%d,%d); want (%d,%d)", top, bottom, tc.top, tc.bottom)
			}
		})
	}
}
