package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always picks the first candidate.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func TestGenerate_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -3, 2},
		{"negative both", -1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.width, tc.height)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidDimension), "got %v", err)
		})
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	dims := []struct{ width, height int }{
		{1, 1}, {2, 1}, {1, 7}, {9, 1}, {3, 3}, {10, 4}, {25, 25}, {64, 3},
	}

	for _, d := range dims {
		for seed := int64(0); seed < 5; seed++ {
			m, err := New(d.width, d.height, WithSeed(seed))
			require.NoError(t, err)
			require.Equal(t, d.width, m.Width())
			require.Equal(t, d.height, m.Height())

			// V-1 edges plus connectivity makes the passages a tree.
			assert.Equal(t, d.width*d.height-1, m.Passages(), "%dx%d seed %d", d.width, d.height, seed)

			records, err := search(m, Cell{}, Cell{X: d.width - 1, Y: d.height - 1})
			require.NoError(t, err)
			for c := range m.All() {
				assert.NotEqual(t, unknownDistance, records[c.Y][c.X].dist, "cell %s unreachable", c)
			}
		}
	}
}

func TestGenerate_NoOneSidedWalls(t *testing.T) {
	m, err := New(12, 9, WithSeed(7))
	require.NoError(t, err)

	for c, w := range m.All() {
		for d := Top; d <= Left; d++ {
			n := c.Step(d)
			if !m.InBound(n) {
				assert.True(t, w.Has(d), "boundary wall %s of %s is open", d, c)
				continue
			}
			nw, err := m.Walls(n)
			require.NoError(t, err)
			assert.Equal(t, w.Has(d), nw.Has(d.Opposite()), "wall between %s and %s", c, n)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := New(3, 3, WithSeed(2024))
	require.NoError(t, err)
	second, err := New(3, 3, WithSeed(2024))
	require.NoError(t, err)

	assert.Equal(t, first.walls, second.walls)

	end := Cell{X: 2, Y: 2}
	p1, err := FindPath(first, Cell{}, end)
	require.NoError(t, err)
	p2, err := FindPath(second, Cell{}, end)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestGenerate_TwoByOne(t *testing.T) {
	m, err := New(2, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Passages())
	assert.True(t, m.IsOpen(Cell{X: 0, Y: 0}, Right))
	assert.True(t, m.IsOpen(Cell{X: 1, Y: 0}, Left))
}

func TestGenerate_InjectedRand(t *testing.T) {
	m, err := New(2, 2, WithRand(zeroRand{}))
	require.NoError(t, err)

	assert.True(t, m.IsValidMove(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}))
	assert.True(t, m.IsValidMove(Cell{X: 1, Y: 0}, Cell{X: 1, Y: 1}))
	assert.True(t, m.IsValidMove(Cell{X: 1, Y: 1}, Cell{X: 0, Y: 1}))
	assert.False(t, m.IsValidMove(Cell{X: 0, Y: 0}, Cell{X: 0, Y: 1}))
}
