package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// MazeService generates, solves and renders mazes.
type MazeService interface {
	// Generate builds one maze and solves it from the top-left to the bottom-right corner.
	Generate(ctx context.Context, spec dmn.MazeSpec) (*dmn.GeneratedMaze, error)

	// GenerateBatch generates every spec independently. Results keep the order of specs.
	GenerateBatch(ctx context.Context, specs []dmn.MazeSpec) ([]*dmn.GeneratedMaze, error)

	// Solve regenerates the ticket's maze and finds the shortest path between start and end.
	// Nil cells default to the corners.
	Solve(ctx context.Context, t dmn.Ticket, start, end *maze.Cell) (*dmn.Solution, error)

	// Render regenerates the ticket's maze as text, optionally overlaying the corner-to-corner solution.
	Render(ctx context.Context, t dmn.Ticket, withSolution bool) (string, error)
}
