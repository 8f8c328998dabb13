// Package tetris implements the state engine of a falling-block puzzle
// game: the piece and board model, movement and rotation validation,
// gravity and lock-delay timing, line clearing, and the 7-bag piece
// supply. The engine performs no I/O and reads no clocks; hosts feed it
// discrete commands and per-frame elapsed time, and render from the
// read-only snapshots it exposes.
package tetris

// ShapeKind identifies one of the seven tetromino shapes.
type ShapeKind int8

// The seven tetromino kinds, in catalog order.
const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeNone marks an empty board cell and an empty hold slot.
const ShapeNone ShapeKind = -1

// NumKinds is the number of distinct tetromino kinds.
const NumKinds = 7

// Valid reports whether k names one of the seven catalog kinds.
func (k ShapeKind) Valid() bool {
	return k >= ShapeI && k <= ShapeL
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Cell is a board coordinate. X grows rightward, Y grows downward; the
// top-left cell of the grid is (0, 0).
type Cell struct {
	X, Y int
}

// Color is the fixed display color of a shape kind.
type Color struct {
	R, G, B uint8
}

var kindColors = [NumKinds]Color{
	ShapeI: {0, 255, 255},
	ShapeO: {255, 255, 0},
	ShapeT: {128, 0, 128},
	ShapeS: {0, 255, 0},
	ShapeZ: {255, 0, 0},
	ShapeJ: {0, 0, 255},
	ShapeL: {255, 165, 0},
}

// Color returns the display color of the kind. Invalid kinds map to black.
func (k ShapeKind) Color() Color {
	if !k.Valid() {
		return Color{}
	}
	return kindColors[k]
}

// rotationStates holds, for every kind, the four rotation states as cell
// offsets relative to the piece anchor. Every state has exactly four
// offsets. Kinds with fewer unique orientations (I, O, S, Z) repeat
// states so all kinds index uniformly mod 4.
var rotationStates = [NumKinds][4][4]Cell{
	ShapeI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeT: {
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 0}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
	},
	ShapeJ: {
		{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	},
	ShapeL: {
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {0, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	},
}

// Offsets returns the four cell offsets of kind at the given rotation
// index. The index is taken modulo 4, so any integer is accepted.
func Offsets(kind ShapeKind, rotation int) [4]Cell {
	return rotationStates[kind][mod4(rotation)]
}

func mod4(rotation int) int {
	return ((rotation % 4) + 4) % 4
}
