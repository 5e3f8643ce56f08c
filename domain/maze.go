// Package dmn holds the values exchanged between the maze service and its callers.
package dmn

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeSpec describes a maze to generate. A nil Seed asks the service to pick one.
type MazeSpec struct {
	Width  int
	Height int
	Seed   *int64
}

// Ticket identifies a generated maze by the inputs that reproduce it.
type Ticket struct {
	MazeID uuid.UUID
	Width  int
	Height int
	Seed   int64
}

// GeneratedMaze is a freshly generated maze with its corner-to-corner solution.
type GeneratedMaze struct {
	ID       uuid.UUID
	Seed     int64
	Maze     *maze.Maze
	Solution *Solution
	Ticket   string // Signed ticket that regenerates Maze.
}

// Solution is the shortest path between two cells of a maze.
type Solution struct {
	Start maze.Cell
	End   maze.Cell
	Path  maze.Path
}
