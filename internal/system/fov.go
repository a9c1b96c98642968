package system

import (
	"raycaster/internal/component"
	"raycaster/internal/gamemap"
	"raycaster/internal/geom"
)

// NewHitBuffer allocates a hit buffer with one slot per screen column.
func NewHitBuffer(numRays int) []Hit {
	return make([]Hit, numRays)
}

// RayAngle returns the normalised angle of ray i out of n spread evenly
// across fov, starting at the left edge of the view.
func RayAngle(heading, fov float64, i, n int) float64 {
	return geom.NormalizeAngle(heading - fov/2 + float64(i)*(fov/float64(n)))
}

// CastAll casts len(hits) rays across the field of view and overwrites hits
// in place, leftmost column first.
func CastAll(pose component.Pose, m *gamemap.GameMap, fov float64, hits []Hit) {
	n := len(hits)
	for i := range hits {
		hits[i] = Cast(RayAngle(pose.Heading, fov, i, n), pose, m)
	}
}
