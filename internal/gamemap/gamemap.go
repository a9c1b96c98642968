package gamemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmpty      = errors.New("gamemap: grid has no cells")
	ErrRagged     = errors.New("gamemap: rows have different lengths")
	ErrTileSize   = errors.New("gamemap: tile size must be positive")
	ErrMaterial   = errors.New("gamemap: unknown material code")
	ErrOpenBorder = errors.New("gamemap: border cell is not a wall")
)

// GameMap is an immutable row-major grid of materials. Cell (row, col)
// covers the world square [col*T, (col+1)*T) x [row*T, (row+1)*T).
type GameMap struct {
	Rows, Cols int
	TileSize   float64
	cells      [][]Material
}

// New validates cells and returns a map that owns a private copy of them.
// The outer ring must be solid so every ray terminates on a real wall.
func New(cells [][]Material, tileSize float64) (*GameMap, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmpty
	}
	if !(tileSize > 0) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrTileSize, tileSize)
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Material, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, r, len(row), cols)
		}
		for c, m := range row {
			if !m.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrMaterial, m, r, c)
			}
			onBorder := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if onBorder && !m.IsWall() {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrOpenBorder, r, c)
			}
		}
		copied[r] = append([]Material(nil), row...)
	}
	return &GameMap{Rows: rows, Cols: cols, TileSize: tileSize, cells: copied}, nil
}

// WorldWidth is the map's extent along x in world units.
func (m *GameMap) WorldWidth() float64 { return float64(m.Cols) * m.TileSize }

// WorldHeight is the map's extent along y in world units.
func (m *GameMap) WorldHeight() float64 { return float64(m.Rows) * m.TileSize }

// InBounds reports whether (row, col) names a cell of the grid.
func (m *GameMap) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// At returns the material of cell (row, col), or MaterialEmpty when the
// cell does not exist.
func (m *GameMap) At(row, col int) Material {
	if !m.InBounds(row, col) {
		return MaterialEmpty
	}
	return m.cells[row][col]
}

// Contains reports whether (x, y) lies in the closed world bound
// [0, W] x [0, H]. The ray stepping loops use the same bound.
func (m *GameMap) Contains(x, y float64) bool {
	return x >= 0 && x <= m.WorldWidth() && y >= 0 && y <= m.WorldHeight()
}

// cellOf floor-divides a world point into cell indices.
func (m *GameMap) cellOf(x, y float64) (row, col int) {
	return int(math.Floor(y / m.TileSize)), int(math.Floor(x / m.TileSize))
}

// HasWall reports whether the world point (x, y) is blocked. Points outside
// the world count as walls.
func (m *GameMap) HasWall(x, y float64) bool {
	if !m.Contains(x, y) {
		return true
	}
	row, col := m.cellOf(x, y)
	if !m.InBounds(row, col) {
		// Only reachable on the far edges x == W or y == H.
		return true
	}
	return m.cells[row][col].IsWall()
}

// MaterialAt returns the material covering (x, y), or MaterialEmpty outside
// the world.
func (m *GameMap) MaterialAt(x, y float64) Material {
	if !m.Contains(x, y) {
		return MaterialEmpty
	}
	row, col := m.cellOf(x, y)
	return m.At(row, col)
}
