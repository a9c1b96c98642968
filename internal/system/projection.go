package system

import (
	"errors"
	"fmt"
	"math"

	"raycaster/internal/gamemap"
)

// ErrNoWall means a ray reached the projection stage without a wall. The
// map's solid border makes this impossible for a valid map.
var ErrNoWall = errors.New("system: ray did not hit a wall")

// Brightness levels for the two grid-line orientations.
const (
	BrightnessVertical   uint8 = 255
	BrightnessHorizontal uint8 = 200
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// DrawRecord is one screen column's wall strip. Top may be negative when the
// strip is taller than the screen; Span clamps it.
type DrawRecord struct {
	Column   int
	Height   float64
	Top      float64
	Distance float64 // fisheye-corrected
	Color    Color
	Material gamemap.Material
	Vertical bool
}

// Span returns the strip's first and last pixel rows clamped to
// [0, screenHeight].
func (d DrawRecord) Span(screenHeight int) (top, bottom int) {
	if !(d.Height < float64(screenHeight)) {
		return 0, screenHeight
	}
	half := screenHeight / 2
	h := int(d.Height)
	top = max(half-h/2, 0)
	bottom = min(half+h/2, screenHeight)
	return top, bottom
}

// Projector turns ray hits into wall strips for a fixed screen and field of
// view.
type Projector struct {
	ScreenWidth  float64
	ScreenHeight float64
	FOV          float64
	TileSize     float64
}

// PlaneDistance is the distance from the observer to the projection plane.
func (p Projector) PlaneDistance() float64 {
	return (p.ScreenWidth / 2) / math.Tan(p.FOV/2)
}

// CorrectedDistance removes the fisheye bowing by projecting the hit
// distance onto the heading direction.
func CorrectedDistance(h Hit, heading float64) float64 {
	return h.Distance * math.Cos(h.Angle-heading)
}

// StripHeight returns the on-screen height of a wall at corrected distance d.
func (p Projector) StripHeight(d float64) float64 {
	return (p.TileSize / d) * p.PlaneDistance()
}

// Shade picks the strip colour: one channel per material, lit brighter when
// the ray struck a vertical grid line.
func Shade(m gamemap.Material, vertical bool) (Color, error) {
	b := BrightnessHorizontal
	if vertical {
		b = BrightnessVertical
	}
	switch m {
	case gamemap.MaterialBrick:
		return Color{R: b}, nil
	case gamemap.MaterialMoss:
		return Color{G: b}, nil
	case gamemap.MaterialSlate:
		return Color{B: b}, nil
	}
	return Color{}, fmt.Errorf("%w: material %d", ErrNoWall, m)
}

// Project fills out[i] from hits[i]. out must be at least as long as hits.
func (p Projector) Project(hits []Hit, heading float64, out []DrawRecord) error {
	if len(out) < len(hits) {
		return fmt.Errorf("system: projection buffer holds %d records, need %d", len(out), len(hits))
	}
	plane := p.PlaneDistance()
	for i, h := range hits {
		c, err := Shade(h.Material, h.Vertical)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		d := CorrectedDistance(h, heading)
		height := (p.TileSize / d) * plane
		out[i] = DrawRecord{
			Column:   i,
			Height:   height,
			Top:      p.ScreenHeight/2 - height/2,
			Distance: d,
			Color:    c,
			Material: h.Material,
			Vertical: h.Vertical,
		}
	}
	return nil
}
