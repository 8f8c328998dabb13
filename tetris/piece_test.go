package tetris_test

import (
	"testing"

	"github.com/plus3/gridlock/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPieceCellsAnchorShift(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeT)
	p.X, p.Y = 3, 5

	// T in rotation 0 is the "up" orientation: stem above a 3-wide base.
	assert.ElementsMatch(t, []tetris.Cell{
		{X: 3, Y: 6},
		{X: 4, Y: 6},
		{X: 5, Y: 6},
		{X: 4, Y: 5},
	}, p.Cells())
}

func TestPieceRotateWraps(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeJ)

	for i := 1; i <= 4; i++ {
		p.Rotate(1)
		assert.Equal(t, i%4, p.Rotation)
	}

	p.Rotate(-1)
	assert.Equal(t, 3, p.Rotation)
}

func TestPieceCellsFollowRotation(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeI)
	p.X, p.Y = 2, 0

	assert.ElementsMatch(t, []tetris.Cell{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
	}, p.Cells())

	p.Rotate(1)
	assert.ElementsMatch(t, []tetris.Cell{
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3},
	}, p.Cells())
}
