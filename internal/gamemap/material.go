package gamemap

// Material identifies what fills one grid cell. Zero is open floor; every
// other code is a wall of that material.
type Material uint8

const (
	MaterialEmpty Material = iota
	MaterialBrick
	MaterialMoss
	MaterialSlate
)

// MaxMaterial is the highest wall code the shading palette knows about.
const MaxMaterial = MaterialSlate

// IsWall reports whether m blocks movement and stops rays.
func (m Material) IsWall() bool { return m != MaterialEmpty }

// Valid reports whether m is a code this package accepts.
func (m Material) Valid() bool { return m <= MaxMaterial }

func (m Material) String() string {
	switch m {
	case MaterialEmpty:
		return "empty"
	case MaterialBrick:
		return "brick"
	case MaterialMoss:
		return "moss"
	case MaterialSlate:
		return "slate"
	}
	return "unknown"
}
