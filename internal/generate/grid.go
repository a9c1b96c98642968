package generate

import "raycaster/internal/gamemap"

// grid is the mutable working copy a layout is carved into.
type grid struct {
	rows, cols int
	cells      [][]gamemap.Material
	rooms      []Rect
}

func newGrid(rows, cols int) *grid {
	cells := make([][]gamemap.Material, rows)
	for r := range cells {
		cells[r] = make([]gamemap.Material, cols)
		for c := range cells[r] {
			cells[r][c] = gamemap.MaterialBrick
		}
	}
	return &grid{rows: rows, cols: cols, cells: cells}
}

// interior reports whether (row, col) is inside the solid outer ring.
func (g *grid) interior(row, col int) bool {
	return row > 0 && row < g.rows-1 && col > 0 && col < g.cols-1
}

func (g *grid) open(row, col int) {
	if g.interior(row, col) {
		g.cells[row][col] = gamemap.MaterialEmpty
	}
}

// paintRooms gives the wall ring of room i material 1 + i%3. Corridors
// that cut a ring leave those cells open.
func (g *grid) paintRooms() {
	for i, room := range g.rooms {
		mat := gamemap.Material(1 + i%int(gamemap.MaxMaterial))
		for r := room.Row1 - 1; r <= room.Row2+1; r++ {
			for c := room.Col1 - 1; c <= room.Col2+1; c++ {
				if r < 0 || c < 0 || r >= g.rows || c >= g.cols {
					continue
				}
				if g.cells[r][c].IsWall() {
					g.cells[r][c] = mat
				}
			}
		}
	}
}
