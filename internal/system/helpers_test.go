package system

import (
	"testing"

	"raycaster/internal/component"
	"raycaster/internal/gamemap"
)

// boxMap returns a rows x cols map bordered by brick with an open interior.
func boxMap(t *testing.T, rows, cols int) *gamemap.GameMap {
	t.Helper()
	cells := make([][]gamemap.Material, rows)
	for r := range cells {
		cells[r] = make([]gamemap.Material, cols)
		for c := range cells[r] {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				cells[r][c] = gamemap.MaterialBrick
			}
		}
	}
	m, err := gamemap.New(cells, 32)
	if err != nil {
		t.Fatalf("gamemap.New: %v", err)
	}
	return m
}

// parseMap builds a map from a layout with 32-unit tiles.
func parseMap(t *testing.T, layout string) *gamemap.GameMap {
	t.Helper()
	m, err := gamemap.Parse(layout, 32)
	if err != nil {
		t.Fatalf("gamemap.Parse: %v", err)
	}
	return m
}

// cellCenter returns the world point at the middle of cell (row, col).
func cellCenter(m *gamemap.GameMap, row, col int) (x, y float64) {
	return (float64(col) + 0.5) * m.TileSize, (float64(row) + 0.5) * m.TileSize
}

func newObserver(x, y, heading float64) *component.Observer {
	return &component.Observer{
		Pose:          component.Pose{X: x, Y: y, Heading: heading},
		Radius:        3,
		MoveSpeed:     2,
		RotationSpeed: 0.5,
	}
}
