package tetris

// Piece is a tetromino instance with a board position and rotation
// state. The anchor (X, Y) is the reference point the rotation offsets
// are measured from.
type Piece struct {
	Kind     ShapeKind
	Rotation int
	X, Y     int
}

// NewPiece returns a piece of the given kind at the origin in rotation
// state 0.
func NewPiece(kind ShapeKind) *Piece {
	return &Piece{Kind: kind}
}

// Cells returns the four board cells the piece occupies at its current
// anchor and rotation.
func (p *Piece) Cells() []Cell {
	offsets := Offsets(p.Kind, p.Rotation)
	cells := make([]Cell, len(offsets))
	for i, o := range offsets {
		cells[i] = Cell{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return cells
}

// Rotate advances the rotation state by direction: +1 clockwise, -1
// counter-clockwise. The change is unconditional; validating the new
// state against a board is the caller's concern, and there is no
// wall-kick search: a blocked rotation must be reverted outright.
func (p *Piece) Rotate(direction int) {
	p.Rotation = mod4(p.Rotation + direction)
}
