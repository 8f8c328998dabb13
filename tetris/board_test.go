package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/gridlock/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *tetris.Board {
	t.Helper()
	board, err := tetris.NewBoard(10, 20)
	require.NoError(t, err)
	return board
}

func fillRow(board *tetris.Board, y int, kind tetris.ShapeKind) {
	cells := make([]tetris.Cell, board.Width())
	for x := range cells {
		cells[x] = tetris.Cell{X: x, Y: y}
	}
	board.Commit(cells, kind)
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		width, height int
		wantErr       bool
	}{
		{10, 20, false},
		{1, 1, false},
		{0, 20, true},
		{10, 0, true},
		{-1, 20, true},
		{10, -5, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			board, err := tetris.NewBoard(tt.width, tt.height)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, board)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.width, board.Width())
				assert.Equal(t, tt.height, board.Height())
			}
		})
	}
}

func TestBoardInside(t *testing.T) {
	board := newTestBoard(t)

	assert.True(t, board.Inside(0, 0))
	assert.True(t, board.Inside(9, 19))
	assert.False(t, board.Inside(-1, 0))
	assert.False(t, board.Inside(10, 0))
	assert.False(t, board.Inside(0, -1))
	assert.False(t, board.Inside(0, 20))
}

func TestBoardFits(t *testing.T) {
	board := newTestBoard(t)

	assert.True(t, board.Fits([]tetris.Cell{{X: 0, Y: 0}, {X: 9, Y: 19}}))
	assert.False(t, board.Fits([]tetris.Cell{{X: -1, Y: 0}}))
	assert.False(t, board.Fits([]tetris.Cell{{X: 0, Y: 20}}))
	assert.False(t, board.Fits([]tetris.Cell{{X: 4, Y: -1}}))

	board.Commit([]tetris.Cell{{X: 4, Y: 10}}, tetris.ShapeT)
	assert.False(t, board.Fits([]tetris.Cell{{X: 4, Y: 10}}))
	assert.True(t, board.Fits([]tetris.Cell{{X: 5, Y: 10}}))
}

func TestBoardCommitSkipsCellsOutsideGrid(t *testing.T) {
	board := newTestBoard(t)

	board.Commit([]tetris.Cell{
		{X: 4, Y: -1}, // above the visible grid
		{X: 4, Y: 0},
		{X: -1, Y: 5},
		{X: 10, Y: 5},
	}, tetris.ShapeZ)

	assert.Equal(t, tetris.ShapeZ, board.Cell(4, 0))
	assert.True(t, board.Occupied(4, 0))
	assert.False(t, board.Occupied(4, 1))
}

func TestClearFullRowsRemovesAndShifts(t *testing.T) {
	board := newTestBoard(t)

	// Rows 2 and 5 full; markers in rows 3 and 19 must survive with
	// their relative order intact, shifted down by the clears above.
	fillRow(board, 2, tetris.ShapeI)
	fillRow(board, 5, tetris.ShapeO)
	board.Commit([]tetris.Cell{{X: 7, Y: 3}}, tetris.ShapeT)
	board.Commit([]tetris.Cell{{X: 1, Y: 19}}, tetris.ShapeL)

	cleared := board.ClearFullRows()
	assert.Equal(t, 2, cleared)

	// Two fresh empty rows on top.
	for x := 0; x < board.Width(); x++ {
		assert.False(t, board.Occupied(x, 0))
		assert.False(t, board.Occupied(x, 1))
	}

	// Old row 3 had two full rows above it, so it lands on row 5;
	// the bottom row never moves.
	assert.Equal(t, tetris.ShapeT, board.Cell(7, 5))
	assert.Equal(t, tetris.ShapeL, board.Cell(1, 19))

	// The full rows are gone entirely.
	occupied := 0
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if board.Occupied(x, y) {
				occupied++
			}
		}
	}
	assert.Equal(t, 2, occupied)
}

func TestClearFullRowsNoneFull(t *testing.T) {
	board := newTestBoard(t)
	board.Commit([]tetris.Cell{{X: 0, Y: 19}, {X: 1, Y: 19}}, tetris.ShapeS)

	assert.Equal(t, 0, board.ClearFullRows())
	assert.Equal(t, tetris.ShapeS, board.Cell(0, 19))
}

func TestClearFullRowsBottomRow(t *testing.T) {
	board := newTestBoard(t)
	fillRow(board, 19, tetris.ShapeJ)
	board.Commit([]tetris.Cell{{X: 3, Y: 18}}, tetris.ShapeT)

	assert.Equal(t, 1, board.ClearFullRows())
	assert.Equal(t, tetris.ShapeT, board.Cell(3, 19))
	assert.False(t, board.Occupied(3, 18))
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	board := newTestBoard(t)
	board.Commit([]tetris.Cell{{X: 2, Y: 2}}, tetris.ShapeI)

	snap := board.Snapshot()
	require.Len(t, snap, 20)
	require.Len(t, snap[0], 10)
	assert.Equal(t, tetris.ShapeI, snap[2][2])

	snap[2][2] = tetris.ShapeNone
	snap[0][0] = tetris.ShapeO
	assert.Equal(t, tetris.ShapeI, board.Cell(2, 2))
	assert.False(t, board.Occupied(0, 0))
}
