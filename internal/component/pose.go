package component

// Pose is a continuous world position plus a heading in [0, 2π).
// Heading 0 points toward +x; π/2 points toward +y (down the rows).
type Pose struct {
	X, Y    float64
	Heading float64
}
