package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaze_String(t *testing.T) {
	t.Run("corridor", func(t *testing.T) {
		m, err := New(2, 1)
		require.NoError(t, err)

		want := "+---+---+\n" +
			"|       |\n" +
			"+---+---+\n"
		assert.Equal(t, want, m.String())
	})

	t.Run("known layout", func(t *testing.T) {
		m, err := New(2, 2, WithRand(zeroRand{}))
		require.NoError(t, err)

		want := "+---+---+\n" +
			"|       |\n" +
			"+---+   +\n" +
			"|       |\n" +
			"+---+---+\n"
		assert.Equal(t, want, m.String())
	})
}

func TestMaze_RenderPath(t *testing.T) {
	m, err := New(2, 1)
	require.NoError(t, err)

	path, err := FindPath(m, Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0})
	require.NoError(t, err)

	want := "+---+---+\n" +
		"| *   * |\n" +
		"+---+---+\n"
	assert.Equal(t, want, m.Render(path))
}

func TestMaze_Accessors(t *testing.T) {
	m, err := New(3, 2, WithSeed(11))
	require.NoError(t, err)

	_, err = m.Walls(Cell{X: 3, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.False(t, m.IsOpen(Cell{X: 0, Y: 0}, Top))
	assert.False(t, m.IsOpen(Cell{X: 0, Y: 0}, Left))
	assert.False(t, m.IsValidMove(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 1}))

	count := 0
	for c, w := range m.All() {
		got, err := m.Walls(c)
		require.NoError(t, err)
		assert.Equal(t, got, w)
		count++
	}
	assert.Equal(t, 6, count)
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, Top, Bottom.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, "Right", Right.String())
}
