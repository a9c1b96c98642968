package system

import (
	"math"

	"raycaster/internal/component"
	"raycaster/internal/gamemap"
	"raycaster/internal/geom"
)

// Hit is the nearest wall one ray reached.
type Hit struct {
	Angle    float64 // normalised cast angle
	X, Y     float64 // point where the ray met the grid line
	Distance float64 // Euclidean distance from the observer, +Inf if nothing was hit
	Material gamemap.Material
	// Vertical is true when the ray stopped on a vertical grid line
	// (x = k*T). It drives shading only.
	Vertical bool
}

// axisEpsilon is how close sin or cos must be to zero for a ray to count as
// axis-aligned. Below it the matching sweep is skipped instead of dividing
// by a vanishing tangent.
const axisEpsilon = 1e-12

// facing is the quadrant classification of a normalised angle.
type facing struct {
	down, up    bool
	right, left bool
}

func facingOf(angle float64) facing {
	f := facing{
		down:  angle > 0 && angle < math.Pi,
		right: angle < 0.5*math.Pi || angle > 1.5*math.Pi,
	}
	f.up = !f.down
	f.left = !f.right
	return f
}

// sweepHit is one sweep's candidate. found is false when the ray left the
// world without touching a wall.
type sweepHit struct {
	x, y  float64
	mat   gamemap.Material
	found bool
}

// Cast walks one ray from pose at angle through m and returns the nearer of
// the horizontal-line and vertical-line hits. The result depends only on
// its arguments.
func Cast(angle float64, pose component.Pose, m *gamemap.GameMap) Hit {
	angle = geom.NormalizeAngle(angle)
	f := facingOf(angle)
	sin, cos := math.Sincos(angle)
	tan := math.Tan(angle)
	alongX := math.Abs(sin) < axisEpsilon // parallel to horizontal lines
	alongY := math.Abs(cos) < axisEpsilon // parallel to vertical lines

	var horz, vert sweepHit
	if !alongX {
		horz = sweepHorizontal(pose, m, f, tan, alongY)
	}
	if !alongY {
		vert = sweepVertical(pose, m, f, tan, alongX)
	}

	horzDist, vertDist := math.Inf(1), math.Inf(1)
	if horz.found {
		horzDist = geom.Distance(pose.X, pose.Y, horz.x, horz.y)
	}
	if vert.found {
		vertDist = geom.Distance(pose.X, pose.Y, vert.x, vert.y)
	}

	hit := Hit{Angle: angle, X: pose.X, Y: pose.Y, Distance: math.Inf(1)}
	switch {
	case vertDist < horzDist:
		hit.X, hit.Y, hit.Distance, hit.Material, hit.Vertical = vert.x, vert.y, vertDist, vert.mat, true
	case horz.found:
		// Exact ties keep the horizontal hit.
		hit.X, hit.Y, hit.Distance, hit.Material = horz.x, horz.y, horzDist, horz.mat
	}
	return hit
}

// sweepHorizontal steps across successive horizontal grid lines y = k*T.
// vertical means the ray points straight up or down, so x never drifts.
func sweepHorizontal(pose component.Pose, m *gamemap.GameMap, f facing, tan float64, vertical bool) sweepHit {
	t := m.TileSize

	y := math.Floor(pose.Y/t) * t
	if f.down {
		y += t
	}
	dy := t
	if f.up {
		dy = -t
	}

	x, dx := pose.X, 0.0
	if !vertical {
		x = pose.X + (y-pose.Y)/tan
		dx = t / tan
		if (f.left && dx > 0) || (f.right && dx < 0) {
			dx = -dx
		}
	}

	// Facing up the crossing sits on the lower edge of the cell we want.
	probeY := 0.0
	if f.up {
		probeY = -1
	}
	return march(m, x, y, dx, dy, 0, probeY)
}

// sweepVertical steps across successive vertical grid lines x = k*T.
// horizontal means the ray points straight left or right, so y never drifts.
func sweepVertical(pose component.Pose, m *gamemap.GameMap, f facing, tan float64, horizontal bool) sweepHit {
	t := m.TileSize

	x := math.Floor(pose.X/t) * t
	if f.right {
		x += t
	}
	dx := t
	if f.left {
		dx = -t
	}

	y, dy := pose.Y, 0.0
	if !horizontal {
		y = pose.Y + (x-pose.X)*tan
		dy = t * tan
		if (f.up && dy > 0) || (f.down && dy < 0) {
			dy = -dy
		}
	}

	probeX := 0.0
	if f.left {
		probeX = -1
	}
	return march(m, x, y, dx, dy, probeX, 0)
}

// march advances (x, y) by (dx, dy) until the cell offset by (probeX,
// probeY) holds a wall or the point leaves the world. Every step moves a
// whole tile along one axis, so Rows+Cols+2 iterations always suffice; the
// cap only matters if a caller hands in a degenerate step.
func march(m *gamemap.GameMap, x, y, dx, dy, probeX, probeY float64) sweepHit {
	limit := m.Rows + m.Cols + 2
	for i := 0; i < limit && m.Contains(x, y); i++ {
		if mat := m.MaterialAt(x+probeX, y+probeY); mat.IsWall() {
			return sweepHit{x: x, y: y, mat: mat, found: true}
		}
		x += dx
		y += dy
	}
	return sweepHit{}
}
