package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Config holds the construction parameters of a Game.
type Config struct {
	Width        int     // grid columns
	Height       int     // grid rows
	LockDelay    float64 // seconds a grounded piece may rest before it locks
	DropInterval float64 // seconds between automatic one-row descents
	SpawnX       int     // anchor column of freshly spawned pieces
	SpawnY       int     // anchor row of freshly spawned pieces
	Preview      int     // upcoming kinds exposed in snapshots, at least 2
	Seed         uint64  // bag RNG seed; 0 picks a random seed
}

// DefaultConfig returns the standard configuration: a 10x20 grid, half a
// second of lock delay and drop interval, spawning at column 3 of the
// top row, and a two-piece preview.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		LockDelay:    0.5,
		DropInterval: 0.5,
		SpawnX:       3,
		SpawnY:       0,
		Preview:      2,
	}
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("tetris: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.LockDelay <= 0 {
		return fmt.Errorf("tetris: lock delay must be positive, got %v", c.LockDelay)
	}
	if c.DropInterval <= 0 {
		return fmt.Errorf("tetris: drop interval must be positive, got %v", c.DropInterval)
	}
	if c.SpawnX < 0 || c.SpawnX >= c.Width || c.SpawnY < 0 || c.SpawnY >= c.Height {
		return fmt.Errorf("tetris: spawn anchor (%d, %d) outside %dx%d grid", c.SpawnX, c.SpawnY, c.Width, c.Height)
	}
	if c.Preview < 2 {
		return fmt.Errorf("tetris: preview must expose at least 2 kinds, got %d", c.Preview)
	}
	return nil
}

// Game is the engine state machine. It exclusively owns the board, the
// active piece, the hold slot, the bag, and the gravity and lock-delay
// timers. It reads no clocks of its own: hosts drive it with commands
// and Tick from a single goroutine; it is not safe for concurrent use.
//
// Invalid commands are silent no-ops: the piece is restored exactly and
// no error surfaces. Once the game is over every command is a no-op.
type Game struct {
	cfg   Config
	board *Board
	bag   *bag

	current  *Piece
	held     *Piece
	holdUsed bool

	dropTimer float64
	lockTimer float64
	elapsed   float64
	over      bool

	lines int
	stats GameStats
}

// NewGame constructs a game and spawns the first piece. It fails fast
// on out-of-range configuration.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g := &Game{
		cfg:   cfg,
		board: board,
		bag:   newBag(rand.New(rand.NewPCG(seed, seed)), cfg.SpawnX, cfg.SpawnY),
	}
	g.spawn()
	return g, nil
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool { return g.over }

// Lines returns the running count of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Elapsed returns the total time fed through Tick, in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Move shifts the active piece horizontally by dx, conventionally -1 or
// +1. An invalid destination leaves the piece exactly where it was.
func (g *Game) Move(dx int) {
	if g.over {
		return
	}
	oldX := g.current.X
	g.current.X += dx
	if !g.board.Fits(g.current.Cells()) {
		g.current.X = oldX
		return
	}
	g.resetLockIfGrounded()
}

// Rotate turns the active piece by direction: +1 clockwise, -1
// counter-clockwise. There is no wall-kick search; a blocked rotation
// is reverted outright and the prior state restored exactly.
func (g *Game) Rotate(direction int) {
	if g.over {
		return
	}
	oldRotation := g.current.Rotation
	g.current.Rotate(direction)
	if !g.board.Fits(g.current.Cells()) {
		g.current.Rotation = oldRotation
		return
	}
	g.resetLockIfGrounded()
}

// SoftDrop lowers the active piece one row. At the floor it does
// nothing; the lock delay decides when the piece commits.
func (g *Game) SoftDrop() {
	if g.over {
		return
	}
	g.current.Y++
	if !g.board.Fits(g.current.Cells()) {
		g.current.Y--
		return
	}
	g.resetLockIfGrounded()
}

// HardDrop sends the active piece straight to its landing position,
// locks it immediately, bypassing the lock delay, and spawns the next
// piece.
func (g *Game) HardDrop() {
	if g.over {
		return
	}
	for {
		g.current.Y++
		if !g.board.Fits(g.current.Cells()) {
			g.current.Y--
			break
		}
	}
	g.stats.HardDrops++
	g.lock()
	g.spawn()
}

// Hold stashes the active piece in the hold slot, spawning the next
// piece, or swaps it with a previously held piece, which re-enters at
// the spawn anchor in rotation state 0. Each piece may be held at most
// once; a second call before the next lock is a no-op. A swapped-in
// piece that does not fit at the spawn anchor ends the game.
func (g *Game) Hold() {
	if g.over || g.holdUsed {
		return
	}
	if g.held == nil {
		g.held = g.current
		g.spawn()
	} else {
		g.current, g.held = g.held, g.current
		g.current.X, g.current.Y = g.cfg.SpawnX, g.cfg.SpawnY
		g.current.Rotation = 0
		if !g.board.Fits(g.current.Cells()) {
			g.over = true
		}
	}
	g.holdUsed = true
	g.lockTimer = 0
	g.stats.Holds++
}

// Tick advances the engine by dt seconds: it runs the lock-delay clock
// while the active piece is grounded and applies one row of gravity
// each time the drop interval elapses. Non-positive dt is ignored.
func (g *Game) Tick(dt float64) {
	if g.over || dt <= 0 {
		return
	}
	g.elapsed += dt
	g.dropTimer += dt

	if g.grounded() {
		g.lockTimer += dt
		if g.lockTimer >= g.cfg.LockDelay {
			g.lock()
			g.spawn()
		}
	} else {
		g.lockTimer = 0
	}

	if g.dropTimer >= g.cfg.DropInterval {
		g.dropTimer = 0
		g.SoftDrop()
	}
}

// grounded reports whether moving the active piece down one row would
// collide with the floor or a locked cell.
func (g *Game) grounded() bool {
	for _, c := range g.current.Cells() {
		if c.Y+1 >= g.board.height || g.board.Occupied(c.X, c.Y+1) {
			return true
		}
	}
	return false
}

func (g *Game) resetLockIfGrounded() {
	if g.grounded() {
		g.lockTimer = 0
	}
}

// lock commits the active piece to the board and clears any completed
// rows.
func (g *Game) lock() {
	g.board.Commit(g.current.Cells(), g.current.Kind)
	cleared := g.board.ClearFullRows()
	g.lines += cleared

	g.stats.PiecesLocked++
	if cleared > 0 {
		g.stats.LinesCleared += int64(cleared)
		if cleared < len(g.stats.ClearCounts) {
			g.stats.ClearCounts[cleared]++
		}
	}
}

// spawn draws the next piece from the bag and makes it active. A piece
// that does not fit at its spawn cells ends the game; the board is left
// untouched.
func (g *Game) spawn() {
	g.current = g.bag.draw()
	g.holdUsed = false
	g.lockTimer = 0
	g.stats.PiecesSpawned++
	if !g.board.Fits(g.current.Cells()) {
		g.over = true
	}
}
