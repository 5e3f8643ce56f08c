package maze

import "fmt"

// Direction names one of the four sides of a cell.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// delta is the coordinate offset of the neighbour on each side.
var delta = [...]Cell{
	Top:    {X: 0, Y: -1},
	Right:  {X: 1, Y: 0},
	Bottom: {X: 0, Y: 1},
	Left:   {X: -1, Y: 0},
}

// Opposite returns the side facing d from the neighbouring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cell identifies a grid position. X grows to the right, Y grows downwards.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the cell adjacent to c on side d. The result may lie outside the grid.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + delta[d].X, Y: c.Y + delta[d].Y}
}

// directionTo returns the side of c that faces n, if n is grid-adjacent to c.
func (c Cell) directionTo(n Cell) (Direction, bool) {
	for d := Top; d <= Left; d++ {
		if c.Step(d) == n {
			return d, true
		}
	}
	return 0, false
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Walls records which sides of a cell are closed.
type Walls struct {
	Top    bool `json:"top"`    // Top is true when the upper side is closed.
	Right  bool `json:"right"`  // Right is true when the right side is closed.
	Bottom bool `json:"bottom"` // Bottom is true when the lower side is closed.
	Left   bool `json:"left"`   // Left is true when the left side is closed.
}

// closedWalls is the state of every cell before carving.
var closedWalls = Walls{Top: true, Right: true, Bottom: true, Left: true}

// Has reports whether the wall on side d is closed.
func (w Walls) Has(d Direction) bool {
	switch d {
	case Top:
		return w.Top
	case Right:
		return w.Right
	case Bottom:
		return w.Bottom
	case Left:
		return w.Left
	default:
		return true
	}
}

// open clears the wall on side d.
func (w *Walls) open(d Direction) {
	switch d {
	case Top:
		w.Top = false
	case Right:
		w.Right = false
	case Bottom:
		w.Bottom = false
	case Left:
		w.Left = false
	}
}
