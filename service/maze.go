package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxDimension = 200
	defaultBatchLimit   = 16
	defaultTicketTTL    = time.Hour
)

var (
	ErrNilTicketer   = errors.New("ticketer is nil")
	ErrEmptyBatch    = errors.New("batch is empty")
	ErrBatchTooLarge = errors.New("batch is too large")
)

// Options tunes a MazeService. Zero or negative fields fall back to defaults.
type Options struct {
	MaxDimension int           // Largest accepted width or height.
	BatchLimit   int           // Largest number of specs in one batch.
	TicketTTL    time.Duration // Lifetime of issued tickets.
}

// MazeService generates mazes and answers path queries about them. It stores nothing:
// a ticket carries the seed, and generation is deterministic given the seed.
type MazeService struct {
	ticketer i.Ticketer
	logger   general_i.Logger
	opts     *Options
}

var _ i.MazeService = &MazeService{}

// NewMazeService creates a MazeService.
func NewMazeService(t i.Ticketer, logger general_i.Logger, opts *Options) (*MazeService, error) {
	if t == nil {
		return nil, ErrNilTicketer
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.BatchLimit <= 0 {
		opts.BatchLimit = defaultBatchLimit
	}

	if opts.TicketTTL <= 0 {
		opts.TicketTTL = defaultTicketTTL
	}

	return &MazeService{
		ticketer: t,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Generate implements i.MazeService.
func (s *MazeService) Generate(ctx context.Context, spec dmn.MazeSpec) (*dmn.GeneratedMaze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if spec.Width > s.opts.MaxDimension || spec.Height > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds the limit of %d", maze.ErrInvalidDimension, spec.Width, spec.Height, s.opts.MaxDimension)
	}

	seed := rand.Int63()
	if spec.Seed != nil {
		seed = *spec.Seed
	}

	m, err := maze.New(spec.Width, spec.Height, maze.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	solution, err := s.solve(m, nil, nil)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	ticket, err := s.ticketer.Issue(dmn.Ticket{
		MazeID: id,
		Width:  spec.Width,
		Height: spec.Height,
		Seed:   seed,
	}, s.opts.TicketTTL)
	if err != nil {
		s.logger.Error(fmt.Sprintf("issuing ticket for maze %s: %s", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("generated maze %s: %dx%d seed=%d steps=%d", id, spec.Width, spec.Height, seed, solution.Path.Steps()))
	return &dmn.GeneratedMaze{
		ID:       id,
		Seed:     seed,
		Maze:     m,
		Solution: solution,
		Ticket:   ticket,
	}, nil
}

// GenerateBatch implements i.MazeService.
func (s *MazeService) GenerateBatch(ctx context.Context, specs []dmn.MazeSpec) ([]*dmn.GeneratedMaze, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyBatch
	}

	if len(specs) > s.opts.BatchLimit {
		return nil, fmt.Errorf("%w: %d specs, limit is %d", ErrBatchTooLarge, len(specs), s.opts.BatchLimit)
	}

	results := make([]*dmn.GeneratedMaze, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	for idx, spec := range specs {
		g.Go(func() error {
			generated, err := s.Generate(gctx, spec)
			if err != nil {
				return fmt.Errorf("maze %d: %w", idx, err)
			}
			results[idx] = generated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error(fmt.Sprintf("batch of %d mazes failed: %s", len(specs), err))
		return nil, err
	}

	return results, nil
}

// Solve implements i.MazeService.
func (s *MazeService) Solve(ctx context.Context, t dmn.Ticket, start, end *maze.Cell) (*dmn.Solution, error) {
	m, err := s.regenerate(ctx, t)
	if err != nil {
		return nil, err
	}

	return s.solve(m, start, end)
}

// Render implements i.MazeService.
func (s *MazeService) Render(ctx context.Context, t dmn.Ticket, withSolution bool) (string, error) {
	m, err := s.regenerate(ctx, t)
	if err != nil {
		return "", err
	}

	if !withSolution {
		return m.String(), nil
	}

	solution, err := s.solve(m, nil, nil)
	if err != nil {
		return "", err
	}
	return m.Render(solution.Path), nil
}

// regenerate rebuilds the maze a ticket points to.
func (s *MazeService) regenerate(ctx context.Context, t dmn.Ticket) (*maze.Maze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := maze.New(t.Width, t.Height, maze.WithSeed(t.Seed))
	if err != nil {
		s.logger.Error(fmt.Sprintf("regenerating maze %s: %s", t.MazeID, err))
		return nil, err
	}
	return m, nil
}

// solve finds the path between start and end, defaulting to the top-left and bottom-right corners.
func (s *MazeService) solve(m *maze.Maze, start, end *maze.Cell) (*dmn.Solution, error) {
	from := maze.Cell{X: 0, Y: 0}
	if start != nil {
		from = *start
	}

	to := maze.Cell{X: m.Width() - 1, Y: m.Height() - 1}
	if end != nil {
		to = *end
	}

	path, err := maze.FindPath(m, from, to)
	if err != nil {
		if errors.Is(err, maze.ErrNoPathFound) {
			s.logger.Error(fmt.Sprintf("maze invariant violated: %s", err))
		}
		return nil, err
	}

	return &dmn.Solution{
		Start: from,
		End:   to,
		Path:  path,
	}, nil
}
