// Package generate carves random maze layouts with binary space
// partitioning: the grid is split into leaves, each leaf gets a room, and
// sibling rooms are joined by corridors.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"raycaster/internal/gamemap"
)

// MapName selects a generated layout wherever a built-in map name is
// accepted.
const MapName = "maze"

var ErrTooSmall = errors.New("generate: grid too small for a room")

// Rect is an inclusive block of cells.
type Rect struct {
	Row1, Col1, Row2, Col2 int
}

// Center returns the middle cell of r.
func (r Rect) Center() (row, col int) {
	return (r.Row1 + r.Row2) / 2, (r.Col1 + r.Col2) / 2
}

// Config drives generation of one layout.
type Config struct {
	Rows, Cols    int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	Rand          *rand.Rand
}

// DefaultConfig returns a 21x31 layout seeded with seed.
func DefaultConfig(seed int64) Config {
	return Config{
		Rows:          21,
		Cols:          31,
		MinLeafSize:   6,
		MaxLeafSize:   12,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

// Layout is a generated grid plus the rooms carved into it. Cells is
// row-major and ready for gamemap.New.
type Layout struct {
	Cells    [][]gamemap.Material
	Rooms    []Rect
	SpawnRow int
	SpawnCol int
}

// Map validates the layout into an immutable grid.
func (l *Layout) Map(tileSize float64) (*gamemap.GameMap, error) {
	return gamemap.New(l.Cells, tileSize)
}

// Spawn returns the world coordinates of the centre of the spawn cell.
func (l *Layout) Spawn(tileSize float64) (x, y float64) {
	return (float64(l.SpawnCol) + 0.5) * tileSize, (float64(l.SpawnRow) + 0.5) * tileSize
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	Row, Col, W, H int
	left, right    *bspLeaf
	room           *Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false // already split
	}
	// Horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, W: l.W, H: at}
		l.right = &bspLeaf{Row: l.Row + at, Col: l.Col, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, W: at, H: l.H}
		l.right = &bspLeaf{Row: l.Row, Col: l.Col + at, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves.
func (l *bspLeaf) createRooms(g *grid, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(g, cfg)
		}
		if l.right != nil {
			l.right.createRooms(g, cfg)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + cfg.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + cfg.Rand.Intn(max(1, availH-minSize+1))
	rw = max(min(rw, l.W-2*pad), minSize)
	rh = max(min(rh, l.H-2*pad), minSize)

	col := l.Col + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	row := l.Row + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep the outer ring solid.
	col = max(col, 1)
	row = max(row, 1)
	if col+rw >= g.cols {
		rw = g.cols - col - 1
	}
	if row+rh >= g.rows {
		rh = g.rows - row - 1
	}
	if rw < minSize || rh < minSize {
		return
	}

	room := Rect{Row1: row, Col1: col, Row2: row + rh - 1, Col2: col + rw - 1}
	l.room = &room
	for r := room.Row1; r <= room.Row2; r++ {
		for c := room.Col1; c <= room.Col2; c++ {
			g.open(r, c)
		}
	}
	g.rooms = append(g.rooms, room)
}

// getRoom returns a room from this leaf or one of its children.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(g *grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lr, lc := lRoom.Center()
	rr, rc := rRoom.Center()
	carveCorridor(g, lr, lc, rr, rc, cfg)
}

// Generate builds a BSP layout. The observer spawns at the centre of the
// first room; walls around each room take one material so rooms read
// apart in the projection.
func Generate(cfg Config) (*Layout, error) {
	if cfg.Rand == nil {
		return nil, fmt.Errorf("generate: nil random source")
	}
	if cfg.MinRoomSize < 1 || cfg.MinLeafSize < 1 || cfg.RoomPadding < 0 {
		return nil, fmt.Errorf("%w: room %d leaf %d padding %d", ErrTooSmall, cfg.MinRoomSize, cfg.MinLeafSize, cfg.RoomPadding)
	}
	if cfg.Rows < cfg.MinRoomSize+2 || cfg.Cols < cfg.MinRoomSize+2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, cfg.Rows, cfg.Cols)
	}
	g := newGrid(cfg.Rows, cfg.Cols)

	root := &bspLeaf{W: cfg.Cols, H: cfg.Rows}
	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(&cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(g, &cfg)
	if len(g.rooms) == 0 {
		return nil, fmt.Errorf("%w: no room fits %dx%d", ErrTooSmall, cfg.Rows, cfg.Cols)
	}
	root.connectChildren(g, &cfg)
	g.paintRooms()

	sr, sc := g.rooms[0].Center()
	return &Layout{Cells: g.cells, Rooms: g.rooms, SpawnRow: sr, SpawnCol: sc}, nil
}
