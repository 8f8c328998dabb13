package tetris

// Snapshot is a read-only view of the engine state for presentation.
// It shares no memory with the engine, so hosts may keep one across
// frames or hand it to another goroutine.
type Snapshot struct {
	Width  int
	Height int

	// Cells is the locked grid, indexed [y][x] with row 0 on top.
	// ShapeNone marks an empty cell.
	Cells [][]ShapeKind

	ActiveKind ShapeKind
	Active     []Cell
	Ghost      []Cell // where the active piece would land on a hard drop

	Held ShapeKind // ShapeNone while the hold slot is empty
	Next []ShapeKind

	Lines   int
	Elapsed float64
	Over    bool
}

// Snapshot captures the current engine state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:      g.board.width,
		Height:     g.board.height,
		Cells:      g.board.Snapshot(),
		ActiveKind: g.current.Kind,
		Active:     g.current.Cells(),
		Ghost:      g.ghostCells(),
		Held:       ShapeNone,
		Next:       g.bag.upcoming(g.cfg.Preview),
		Lines:      g.lines,
		Elapsed:    g.elapsed,
		Over:       g.over,
	}
	if g.held != nil {
		s.Held = g.held.Kind
	}
	return s
}

// ghostCells returns the cells the active piece would occupy after a
// hard drop. Presentation data only; the engine never acts on it.
func (g *Game) ghostCells() []Cell {
	ghost := *g.current
	for {
		ghost.Y++
		if !g.board.Fits(ghost.Cells()) {
			ghost.Y--
			break
		}
	}
	return ghost.Cells()
}
