/*
Package maze generates perfect rectangular mazes and finds shortest paths through them.

A maze is a width×height grid of cells, each with four walls. Generation carves a
spanning tree with randomized iterative depth-first search, so every pair of cells is
joined by exactly one simple path. FindPath recovers that path with breadth-first search.

Mazes are immutable once generated and safe to share between goroutines.
*/
package maze

import (
	"errors"
	"iter"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrOutOfBounds      = errors.New("cell is out of the maze")
	ErrNoPathFound      = errors.New("no path found")
	ErrNilMaze          = errors.New("maze is nil")
)

// neighborOrder fixes the enumeration order so that a seeded generator is reproducible.
var neighborOrder = [...]Direction{Right, Left, Bottom, Top}

// Maze is the read-only result of generation.
type Maze struct {
	width  int       // Number of columns.
	height int       // Number of rows.
	walls  [][]Walls // walls[y][x] holds the walls of cell (x, y).
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBound reports whether c lies inside the grid.
func (m *Maze) InBound(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Walls returns the walls of cell c.
func (m *Maze) Walls(c Cell) (Walls, error) {
	if !m.InBound(c) {
		return Walls{}, ErrOutOfBounds
	}
	return m.walls[c.Y][c.X], nil
}

// IsOpen reports whether one can step from c through side d.
// The outer boundary is always closed.
func (m *Maze) IsOpen(c Cell, d Direction) bool {
	if !m.InBound(c) || !m.InBound(c.Step(d)) {
		return false
	}
	return !m.walls[c.Y][c.X].Has(d)
}

// IsValidMove reports whether to is adjacent to from and the wall between them is open.
func (m *Maze) IsValidMove(from, to Cell) bool {
	d, ok := from.directionTo(to)
	return ok && m.IsOpen(from, d)
}

// All yields every cell with its walls, row by row.
func (m *Maze) All() iter.Seq2[Cell, Walls] {
	return func(yield func(Cell, Walls) bool) {
		for y, row := range m.walls {
			for x, w := range row {
				if !yield(Cell{X: x, Y: y}, w) {
					return
				}
			}
		}
	}
}

// Passages counts the carved edges between adjacent cells.
func (m *Maze) Passages() int {
	count := 0
	for c, w := range m.All() {
		// Count each shared edge once, from its left or upper cell.
		if !w.Right && m.InBound(c.Step(Right)) {
			count++
		}
		if !w.Bottom && m.InBound(c.Step(Bottom)) {
			count++
		}
	}
	return count
}

// adjacent is an in-bound neighbour of a cell and the side of that cell facing it.
type adjacent struct {
	cell Cell
	dir  Direction
}

// neighbors returns the in-bound cells adjacent to c.
func neighbors(width, height int, c Cell) []adjacent {
	result := make([]adjacent, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		n := c.Step(d)
		if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
			result = append(result, adjacent{cell: n, dir: d})
		}
	}
	return result
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil)
}

// Render draws the maze as text, marking the cells of path with '*'.
func (m *Maze) Render(path Path) string {
	onPath := make(map[Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.width; x++ {
		if m.walls[0][x].Top {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.height; y++ {
		// Cell row
		if m.walls[y][0].Left {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.width; x++ {
			if _, ok := onPath[Cell{X: x, Y: y}]; ok {
				b.WriteString(" * ")
			} else {
				b.WriteString("   ")
			}
			if m.walls[y][x].Right {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.walls[y][x].Bottom {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
