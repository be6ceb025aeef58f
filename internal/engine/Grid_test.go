package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	grid, err := NewGrid(rows, cols)
	require.NoError(t, err)
	return grid
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestNewGridStartsEmpty(t *testing.T) {
	grid := newTestGrid(t, 3, 4)
	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 4, grid.Cols())
	assert.Equal(t, 12, grid.Count(Empty))
	assert.True(t, grid.AwaitingStart())
	assert.True(t, grid.AwaitingEnd())
	assert.Equal(t, AwaitingStart, grid.Phase())

	cell, ok := grid.CellAt(Position{X: 3, Y: 2})
	require.True(t, ok)
	assert.Equal(t, Position{X: 3, Y: 2}, cell.Position())
}

func TestIsValid(t *testing.T) {
	grid := newTestGrid(t, 3, 4)
	assert.True(t, grid.IsValid(Position{X: 0, Y: 0}))
	assert.True(t, grid.IsValid(Position{X: 3, Y: 2}))
	assert.False(t, grid.IsValid(Position{X: 4, Y: 0}))
	assert.False(t, grid.IsValid(Position{X: 0, Y: 3}))
	assert.False(t, grid.IsValid(Position{X: -1, Y: 1}))

	_, ok := grid.CellAt(Position{X: 9, Y: 9})
	assert.False(t, ok)
}

func TestNeighborsOfOrder(t *testing.T) {
	grid := newTestGrid(t, 3, 3)

	t.Run("center has up left right down", func(t *testing.T) {
		assert.Equal(t, []Position{
			{X: 1, Y: 0},
			{X: 0, Y: 1},
			{X: 2, Y: 1},
			{X: 1, Y: 2},
		}, grid.NeighborsOf(Position{X: 1, Y: 1}))
	})

	t.Run("corner drops out of bounds cells", func(t *testing.T) {
		assert.Equal(t, []Position{
			{X: 1, Y: 0},
			{X: 0, Y: 1},
		}, grid.NeighborsOf(Position{X: 0, Y: 0}))
	})
}

func TestPlaceAtLeftClickSequence(t *testing.T) {
	grid := newTestGrid(t, 5, 5)

	grid.PlaceAt(Position{X: 0, Y: 0}, LeftButton)
	assert.Equal(t, Start, grid.TypeAt(Position{X: 0, Y: 0}))
	assert.Equal(t, AwaitingEnd, grid.Phase())

	grid.PlaceAt(Position{X: 4, Y: 4}, LeftButton)
	assert.Equal(t, End, grid.TypeAt(Position{X: 4, Y: 4}))
	assert.Equal(t, Ready, grid.Phase())

	grid.PlaceAt(Position{X: 2, Y: 2}, LeftButton)
	assert.Equal(t, Wall, grid.TypeAt(Position{X: 2, Y: 2}))

	start, ok := grid.Start()
	require.True(t, ok)
	assert.Equal(t, Position{X: 0, Y: 0}, start)
	end, ok := grid.End()
	require.True(t, ok)
	assert.Equal(t, Position{X: 4, Y: 4}, end)
}

func TestPlaceWallIsNoOpOnOccupiedCells(t *testing.T) {
	grid := newTestGrid(t, 5, 5)
	grid.PlaceAt(Position{X: 0, Y: 0}, LeftButton)
	grid.PlaceAt(Position{X: 4, Y: 4}, LeftButton)
	grid.PlaceAt(Position{X: 2, Y: 2}, LeftButton)

	cases := map[Position]CellType{
		{X: 0, Y: 0}: Start,
		{X: 4, Y: 4}: End,
		{X: 2, Y: 2}: Wall,
	}
	for position, want := range cases {
		grid.PlaceAt(position, LeftButton)
		assert.Equal(t, want, grid.TypeAt(position))
	}
	assert.Equal(t, Ready, grid.Phase())
}

func TestPlaceAtRightClick(t *testing.T) {
	grid := newTestGrid(t, 5, 5)
	grid.PlaceAt(Position{X: 0, Y: 0}, LeftButton)
	grid.PlaceAt(Position{X: 4, Y: 4}, LeftButton)
	grid.PlaceAt(Position{X: 1, Y: 1}, LeftButton)

	t.Run("wall becomes empty", func(t *testing.T) {
		grid.PlaceAt(Position{X: 1, Y: 1}, RightButton)
		assert.Equal(t, Empty, grid.TypeAt(Position{X: 1, Y: 1}))
		assert.Equal(t, Ready, grid.Phase())
	})

	t.Run("removing start waits for start again", func(t *testing.T) {
		grid.PlaceAt(Position{X: 0, Y: 0}, RightButton)
		assert.Equal(t, Empty, grid.TypeAt(Position{X: 0, Y: 0}))
		assert.True(t, grid.AwaitingStart())
		assert.False(t, grid.AwaitingEnd())
		_, ok := grid.Start()
		assert.False(t, ok)

		grid.PlaceAt(Position{X: 3, Y: 0}, LeftButton)
		assert.Equal(t, Start, grid.TypeAt(Position{X: 3, Y: 0}))
		assert.Equal(t, Ready, grid.Phase())
	})

	t.Run("removing end waits for end again", func(t *testing.T) {
		grid.PlaceAt(Position{X: 4, Y: 4}, RightButton)
		assert.Equal(t, AwaitingEnd, grid.Phase())
		grid.PlaceAt(Position{X: 4, Y: 3}, LeftButton)
		assert.Equal(t, End, grid.TypeAt(Position{X: 4, Y: 3}))
	})
}

func TestPlaceAtOutOfBoundsIsIgnored(t *testing.T) {
	grid := newTestGrid(t, 2, 2)
	grid.PlaceAt(Position{X: 5, Y: 5}, LeftButton)
	grid.PlaceAt(Position{X: -1, Y: 0}, RightButton)
	assert.Equal(t, 4, grid.Count(Empty))
	assert.Equal(t, AwaitingStart, grid.Phase())
}

func TestPlaceEndOnStartMakesThemCoincide(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	grid.PlaceAt(Position{X: 1, Y: 1}, LeftButton)
	grid.PlaceAt(Position{X: 1, Y: 1}, LeftButton)

	start, _ := grid.Start()
	end, _ := grid.End()
	assert.Equal(t, start, end)
	assert.Equal(t, Ready, grid.Phase())

	assert.Equal(t, End, grid.TypeAt(Position{X: 1, Y: 1}))

	// the first right click removes the end drawn on top, the start stays
	grid.PlaceAt(Position{X: 1, Y: 1}, RightButton)
	assert.False(t, grid.AwaitingStart())
	assert.True(t, grid.AwaitingEnd())
	assert.Equal(t, Start, grid.TypeAt(Position{X: 1, Y: 1}))

	grid.PlaceAt(Position{X: 1, Y: 1}, RightButton)
	assert.True(t, grid.AwaitingStart())
	assert.True(t, grid.AwaitingEnd())
	assert.Equal(t, Empty, grid.TypeAt(Position{X: 1, Y: 1}))
}

func TestRightClickOnStartPlacedOverEnd(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	grid.PlaceAt(Position{X: 0, Y: 0}, LeftButton)
	grid.PlaceAt(Position{X: 2, Y: 2}, LeftButton)
	grid.PlaceAt(Position{X: 0, Y: 0}, RightButton)
	grid.PlaceAt(Position{X: 2, Y: 2}, LeftButton)
	require.Equal(t, Start, grid.TypeAt(Position{X: 2, Y: 2}))

	grid.PlaceAt(Position{X: 2, Y: 2}, RightButton)
	assert.True(t, grid.AwaitingStart())
	assert.False(t, grid.AwaitingEnd())
	assert.Equal(t, End, grid.TypeAt(Position{X: 2, Y: 2}))
}

func TestReset(t *testing.T) {
	grid := newTestGrid(t, 5, 5)
	grid.PlaceAt(Position{X: 0, Y: 0}, LeftButton)
	grid.PlaceAt(Position{X: 4, Y: 4}, LeftButton)
	grid.PlaceAt(Position{X: 2, Y: 2}, LeftButton)
	require.True(t, grid.RunSearch(BFS, nil))

	grid.Reset()
	once := grid.Snapshot()
	assert.Equal(t, 25, grid.Count(Empty))
	assert.True(t, grid.AwaitingStart())
	assert.True(t, grid.AwaitingEnd())

	grid.Reset()
	assert.Equal(t, once, grid.Snapshot())
	assert.True(t, grid.AwaitingStart())
	assert.True(t, grid.AwaitingEnd())
}

func TestSnapshotIsACopy(t *testing.T) {
	grid := newTestGrid(t, 2, 2)
	frame := grid.Snapshot()
	frame[0][0] = Wall
	assert.Equal(t, Empty, grid.TypeAt(Position{X: 0, Y: 0}))
}
