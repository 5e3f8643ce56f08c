package maze

import (
	"fmt"
	"slices"
)

// unknownDistance marks a cell the search has not reached yet.
const unknownDistance = -1

// Path is an ordered sequence of cells from start to end inclusive.
type Path []Cell

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	return max(len(p)-1, 0)
}

// record is the search state of one cell; it is written once, when the cell is first reached.
type record struct {
	parent    Cell
	hasParent bool
	dist      int
}

// FindPath returns the shortest path from start to end.
func FindPath(m *Maze, start, end Cell) (Path, error) {
	records, err := search(m, start, end)
	if err != nil {
		return nil, err
	}

	path := Path{end}
	for current := end; records[current.Y][current.X].hasParent; {
		current = records[current.Y][current.X].parent
		path = append(path, current)
	}
	slices.Reverse(path)

	return path, nil
}

// Distance returns the number of steps on the shortest path from start to end.
func Distance(m *Maze, start, end Cell) (int, error) {
	records, err := search(m, start, end)
	if err != nil {
		return 0, err
	}
	return records[end.Y][end.X].dist, nil
}

// search runs breadth-first search from start and fails if end was not reached.
func search(m *Maze, start, end Cell) ([][]record, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.InBound(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d", ErrOutOfBounds, start, m.width, m.height)
	}
	if !m.InBound(end) {
		return nil, fmt.Errorf("%w: end %s in %dx%d", ErrOutOfBounds, end, m.width, m.height)
	}

	records := make([][]record, m.height)
	for y := range records {
		records[y] = make([]record, m.width)
		for x := range records[y] {
			records[y][x].dist = unknownDistance
		}
	}
	records[start.Y][start.X].dist = 0

	queue := make([]Cell, 0, m.width*m.height)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		for _, n := range neighbors(m.width, m.height, current) {
			// The current side is canonical; carving keeps the facing side equal.
			if m.walls[current.Y][current.X].Has(n.dir) {
				continue
			}
			next := &records[n.cell.Y][n.cell.X]
			if next.dist != unknownDistance {
				continue
			}
			next.parent = current
			next.hasParent = true
			next.dist = records[current.Y][current.X].dist + 1
			queue = append(queue, n.cell)
		}
	}

	if records[end.Y][end.X].dist == unknownDistance {
		return nil, fmt.Errorf("%w: from %s to %s", ErrNoPathFound, start, end)
	}
	return records, nil
}
