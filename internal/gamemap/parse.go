package gamemap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGlyph is returned by Parse for a character it cannot map to a material.
var ErrGlyph = errors.New("gamemap: unknown layout glyph")

// glyphs maps layout characters to materials. '#' is an alias for brick.
var glyphs = map[rune]Material{
	'.': MaterialEmpty,
	'0': MaterialEmpty,
	'1': MaterialBrick,
	'#': MaterialBrick,
	'2': MaterialMoss,
	'3': MaterialSlate,
}

// Parse builds a map from an ASCII layout, one row per line. Blank lines
// and leading or trailing whitespace on each line are ignored.
func Parse(layout string, tileSize float64) (*GameMap, error) {
	var cells [][]Material
	for n, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Material, 0, len(line))
		for _, ch := range line {
			m, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q on line %d", ErrGlyph, ch, n+1)
			}
			row = append(row, m)
		}
		cells = append(cells, row)
	}
	return New(cells, tileSize)
}

// Glyph returns the layout character Parse reads as m.
func Glyph(m Material) rune {
	switch m {
	case MaterialBrick:
		return '1'
	case MaterialMoss:
		return '2'
	case MaterialSlate:
		return '3'
	}
	return '.'
}
