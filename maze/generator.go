package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomSource picks uniformly distributed indices. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand makes the generator draw from r. A nil r is ignored.
func WithRand(r RandomSource) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithSeed makes the generator reproducible: equal seeds give equal mazes.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

// Generator carves perfect mazes. A Generator is not safe for concurrent use;
// give each goroutine its own.
type Generator struct {
	rand RandomSource
}

// NewGenerator creates a Generator. Without options it is seeded from the clock.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// New generates a maze of the given dimensions with a fresh Generator.
func New(width, height int, opts ...Option) (*Maze, error) {
	return NewGenerator(opts...).Generate(width, height)
}

// Generate carves a width×height maze with randomized iterative depth-first search.
func (g *Generator) Generate(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	walls := make([][]Walls, height)
	visited := make([][]bool, height)
	for y := range walls {
		walls[y] = make([]Walls, width)
		visited[y] = make([]bool, width)
		for x := range walls[y] {
			walls[y][x] = closedWalls
		}
	}

	start := Cell{X: g.rand.Intn(width), Y: g.rand.Intn(height)}
	visited[start.Y][start.X] = true
	stack := []Cell{start}

	for len(stack) > 0 {
		current := pop(&stack)

		var unvisited []adjacent
		for _, n := range neighbors(width, height, current) {
			if !visited[n.cell.Y][n.cell.X] {
				unvisited = append(unvisited, n)
			}
		}
		if len(unvisited) == 0 {
			continue
		}

		stack = append(stack, current)
		next := unvisited[g.rand.Intn(len(unvisited))]
		openWall(walls, current, next)
		visited[next.cell.Y][next.cell.X] = true
		stack = append(stack, next.cell)
	}

	return &Maze{
		width:  width,
		height: height,
		walls:  walls,
	}, nil
}

// openWall removes the wall between from and its neighbour on both sides.
func openWall(walls [][]Walls, from Cell, to adjacent) {
	walls[from.Y][from.X].open(to.dir)
	walls[to.cell.Y][to.cell.X].open(to.dir.Opposite())
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]Cell) Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
