// Package mazeapi provides structures and utilities for maze generation and solving requests and responses.
package mazeapi

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateRequest asks for one maze. Seed is optional.
type GenerateRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// BatchRequest asks for several independent mazes.
type BatchRequest struct {
	Mazes []GenerateRequest `json:"mazes" binding:"required,dive"`
}

// SolutionQuery selects the endpoints of a path. Omitted cells default to the corners.
type SolutionQuery struct {
	StartX *int `form:"startX"`
	StartY *int `form:"startY"`
	EndX   *int `form:"endX"`
	EndY   *int `form:"endY"`
}

// SolutionResponse is a path through a maze.
type SolutionResponse struct {
	Start maze.Cell   `json:"start"`
	End   maze.Cell   `json:"end"`
	Path  []maze.Cell `json:"path"`
	Steps int         `json:"steps"`
}

// MazeResponse is a generated maze. Cells is indexed as cells[y][x].
type MazeResponse struct {
	ID       string           `json:"id"`
	Seed     int64            `json:"seed"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Cells    [][]maze.Walls   `json:"cells"`
	Solution SolutionResponse `json:"solution"`
	Ticket   string           `json:"ticket"`
}

// BatchResponse lists generated mazes in request order.
type BatchResponse struct {
	Mazes []MazeResponse `json:"mazes"`
}

func (r GenerateRequest) spec() dmn.MazeSpec {
	return dmn.MazeSpec{Width: r.Width, Height: r.Height, Seed: r.Seed}
}

func newSolutionResponse(s *dmn.Solution) SolutionResponse {
	return SolutionResponse{
		Start: s.Start,
		End:   s.End,
		Path:  s.Path,
		Steps: s.Path.Steps(),
	}
}

func newMazeResponse(g *dmn.GeneratedMaze) MazeResponse {
	cells := make([][]maze.Walls, g.Maze.Height())
	for y := range cells {
		cells[y] = make([]maze.Walls, g.Maze.Width())
	}
	for c, w := range g.Maze.All() {
		cells[c.Y][c.X] = w
	}

	return MazeResponse{
		ID:       g.ID.String(),
		Seed:     g.Seed,
		Width:    g.Maze.Width(),
		Height:   g.Maze.Height(),
		Cells:    cells,
		Solution: newSolutionResponse(g.Solution),
		Ticket:   g.Ticket,
	}
}
