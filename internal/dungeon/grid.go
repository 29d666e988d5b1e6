// Package dungeon generates floor layouts: a grid of wall and floor cells
// with independently random walls.
package dungeon

import (
	"math/rand"

	"github.com/vovakirdan/dungeon-collector/internal/core"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	Floor Tile = iota
	Wall
)

// DefaultWallChance is the wall probability used when settings give none.
const DefaultWallChance = 0.2

// Grid is a cols × rows array of tiles, stored row-major.
type Grid struct {
	cols  int
	rows  int
	tiles []Tile
}

// NewGrid creates an all-floor grid.
func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Grid{
		cols:  cols,
		rows:  rows,
		tiles: make([]Tile, cols*rows),
	}
}

// Generate rolls a new grid: each cell is a Wall with probability p,
// independently of every other cell. There is no connectivity guarantee.
func Generate(rng *rand.Rand, cols, rows int, p float64) *Grid {
	g := NewGrid(cols, rows)
	p = core.ClampF(p, 0, 1)
	for i := range g.tiles {
		if rng.Float64() < p {
			g.tiles[i] = Wall
		}
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// InBounds reports whether (col, row) is inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the tile at (col, row). Out-of-bounds cells read as Floor.
func (g *Grid) At(col, row int) Tile {
	if !g.InBounds(col, row) {
		return Floor
	}
	return g.tiles[row*g.cols+col]
}

// Set changes the tile at (col, row). Out-of-bounds writes are ignored.
func (g *Grid) Set(col, row int, t Tile) {
	if !g.InBounds(col, row) {
		return
	}
	g.tiles[row*g.cols+col] = t
}

// IsWall reports whether (col, row) is a wall.
func (g *Grid) IsWall(col, row int) bool {
	return g.At(col, row) == Wall
}

// WallCount returns how many cells are walls.
func (g *Grid) WallCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == Wall {
			n++
		}
	}
	return n
}
