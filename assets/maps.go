package assets

import (
	"fmt"
	"math"
	"sort"
)

// MapDef is a built-in layout plus where the observer starts on it.
// Spawn coordinates are in tiles, so they scale with the tile size.
type MapDef struct {
	Name    string
	Title   string
	Layout  string
	SpawnX  float64 // tiles
	SpawnY  float64 // tiles
	Heading float64 // radians
}

// Maps are the layouts shipped with the binary, keyed by name. Digits are
// materials: 1 brick, 2 moss, 3 slate; 0 is open floor.
var Maps = map[string]MapDef{
	"courtyard": {
		Name:  "courtyard",
		Title: "The Courtyard",
		Layout: `
111111111111111
100110000000001
100100000000001
100100002220001
100110000020001
100000000020001
102000020000001
103100030000001
100000030000331
100000000000001
111111111111111`,
		SpawnX:  7.5,
		SpawnY:  5.5,
		Heading: math.Pi / 2,
	},
	"gallery": {
		Name:  "gallery",
		Title: "The Long Gallery",
		Layout: `
33333333333333333333
30000000000000000003
30202020202020202003
30000000000000000003
30000000000000000003
30000011111111000003
30000010000001000003
30000000000000000003
30202020202020202003
30000000000000000003
33333333333333333333`,
		SpawnX:  1.5,
		SpawnY:  4.5,
		Heading: 0,
	},
	"cellar": {
		Name:  "cellar",
		Title: "The Cellar",
		Layout: `
222222222
200010002
201010102
201000102
201111102
200000002
211101112
200000002
222222222`,
		SpawnX:  1.5,
		SpawnY:  1.5,
		Heading: math.Pi / 2,
	},
}

// MapNames returns the built-in map names in sorted order.
func MapNames() []string {
	names := make([]string, 0, len(Maps))
	for n := range Maps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupMap returns the named layout.
func LookupMap(name string) (MapDef, error) {
	def, ok := Maps[name]
	if !ok {
		return MapDef{}, fmt.Errorf("unknown map %q (have %v)", name, MapNames())
	}
	return def, nil
}
