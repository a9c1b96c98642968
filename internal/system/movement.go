package system

import (
	"errors"
	"fmt"
	"math"

	"raycaster/internal/component"
	"raycaster/internal/gamemap"
	"raycaster/internal/geom"
)

// ErrSpawnBlocked is returned when an observer would start inside a wall.
var ErrSpawnBlocked = errors.New("system: spawn point is inside a wall")

// MoveResult describes the outcome of an Advance call.
type MoveResult uint8

const (
	MoveIdle    MoveResult = iota // no walk intent this tick
	MoveOK                        // position updated
	MoveBlocked                   // destination point is a wall or out of bounds
)

func (r MoveResult) String() string {
	switch r {
	case MoveIdle:
		return "idle"
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	}
	return "unknown"
}

// CheckSpawn returns ErrSpawnBlocked if o's position is not walkable on m.
func CheckSpawn(o *component.Observer, m *gamemap.GameMap) error {
	if m.HasWall(o.X, o.Y) {
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrSpawnBlocked, o.X, o.Y)
	}
	return nil
}

// Advance applies one tick of o.Intent: turn first, then a single step along
// the new heading. A blocked step is dropped whole; there is no sliding
// along walls and no partial step. Collision only tests the destination
// point, so a fast observer can clip a wall corner.
func Advance(o *component.Observer, m *gamemap.GameMap) MoveResult {
	in := o.Intent.Clamp()
	o.Heading = geom.NormalizeAngle(o.Heading + float64(in.Turn)*o.RotationSpeed)

	if in.Walk == 0 {
		return MoveIdle
	}
	step := float64(in.Walk) * o.MoveSpeed
	nx := o.X + math.Cos(o.Heading)*step
	ny := o.Y + math.Sin(o.Heading)*step
	if m.HasWall(nx, ny) {
		return MoveBlocked
	}
	o.X, o.Y = nx, ny
	return MoveOK
}
