package tetris

// GameStats provides cumulative counters for a running game.
type GameStats struct {
	PiecesSpawned int64
	PiecesLocked  int64
	Holds         int64
	HardDrops     int64
	LinesCleared  int64

	// ClearCounts[n] is the number of locks that cleared exactly n rows,
	// for n in 1..4.
	ClearCounts [5]int64

	Elapsed float64
}

// Stats returns a copy of the game's cumulative counters.
func (g *Game) Stats() GameStats {
	stats := g.stats
	stats.Elapsed = g.elapsed
	return stats
}
