package component

// Observer is the mobile viewpoint. Radius is only used when drawing the
// overview; collision treats the observer as a point.
type Observer struct {
	Pose
	Radius        float64
	MoveSpeed     float64 // world units per tick
	RotationSpeed float64 // radians per tick
	Intent        Intent
}
