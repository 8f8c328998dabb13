package tetris

import "fmt"

// Board is a fixed-size grid of locked cells. Row 0 is the top row.
// A cell either holds the kind that was locked into it or ShapeNone.
// The board never references the active piece; callers pass piece cells
// in as plain coordinates.
type Board struct {
	width, height int
	rows          [][]ShapeKind
}

// NewBoard creates an empty board. Width and height must be positive.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("tetris: board dimensions must be positive, got %dx%d", width, height)
	}
	rows := make([][]ShapeKind, height)
	for y := range rows {
		rows[y] = emptyRow(width)
	}
	return &Board{width: width, height: height, rows: rows}, nil
}

func emptyRow(width int) []ShapeKind {
	row := make([]ShapeKind, width)
	for x := range row {
		row[x] = ShapeNone
	}
	return row
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Inside reports whether (x, y) lies within the grid.
func (b *Board) Inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Occupied reports whether the cell at (x, y) holds a locked block.
// Only meaningful for coordinates within the grid.
func (b *Board) Occupied(x, y int) bool {
	return b.rows[y][x] != ShapeNone
}

// Cell returns the kind locked at (x, y), or ShapeNone if the cell is
// empty. Only meaningful for coordinates within the grid.
func (b *Board) Cell(x, y int) ShapeKind {
	return b.rows[y][x]
}

// Fits reports whether every given cell is inside the grid and
// unoccupied.
func (b *Board) Fits(cells []Cell) bool {
	for _, c := range cells {
		if !b.Inside(c.X, c.Y) || b.rows[c.Y][c.X] != ShapeNone {
			return false
		}
	}
	return true
}

// Commit locks the given cells as kind. Cells outside the grid are
// silently skipped: a piece may lock while partially above the top row,
// which surfaces later as a spawn collision rather than an error here.
func (b *Board) Commit(cells []Cell, kind ShapeKind) {
	for _, c := range cells {
		if b.Inside(c.X, c.Y) {
			b.rows[c.Y][c.X] = kind
		}
	}
}

// ClearFullRows removes every fully occupied row, inserts the same
// number of empty rows at the top, and returns how many rows were
// removed. All full rows are removed in one pass and the relative order
// of surviving rows is preserved.
func (b *Board) ClearFullRows() int {
	survivors := make([][]ShapeKind, 0, b.height)
	for _, row := range b.rows {
		if !rowFull(row) {
			survivors = append(survivors, row)
		}
	}
	cleared := b.height - len(survivors)
	if cleared == 0 {
		return 0
	}

	rows := make([][]ShapeKind, 0, b.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, emptyRow(b.width))
	}
	b.rows = append(rows, survivors...)
	return cleared
}

func rowFull(row []ShapeKind) bool {
	for _, kind := range row {
		if kind == ShapeNone {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy of the grid contents, indexed [y][x].
func (b *Board) Snapshot() [][]ShapeKind {
	rows := make([][]ShapeKind, b.height)
	for y, row := range b.rows {
		rows[y] = make([]ShapeKind, b.width)
		copy(rows[y], row)
	}
	return rows
}
