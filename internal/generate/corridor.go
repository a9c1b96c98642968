package generate

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// carveCorridor digs a tunnel between (r1,c1) and (r2,c2).
func carveCorridor(g *grid, r1, c1, r2, c2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(g, r1, c1, r2, c2)
	case CorridorStraight:
		carveH(g, c1, c2, r1)
		carveV(g, r1, r2, c2)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(g, c1, c2, r1)
			carveV(g, r1, r2, c2)
		} else {
			carveV(g, r1, r2, c1)
			carveH(g, c1, c2, r2)
		}
	}
}

func carveH(g *grid, c1, c2, row int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		g.open(row, c)
	}
}

func carveV(g *grid, r1, r2, col int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		g.open(r, col)
	}
}

func carveZShaped(g *grid, r1, c1, r2, c2 int) {
	mid := (r1 + r2) / 2
	carveV(g, r1, mid, c1)
	carveH(g, c1, c2, mid)
	carveV(g, mid, r2, c2)
}
