// Command gridlock-sim runs headless games driven by a random command
// policy and reports aggregate engine statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/gridlock/tetris"
)

// tickStep is the simulated frame time fed to the engine, 60 Hz.
const tickStep = 1.0 / 60.0

func main() {
	games := flag.Int("games", 100, "The number of games to simulate.")
	seed := flag.Uint64("seed", 1, "The base RNG seed; game i uses seed+i.")
	maxPieces := flag.Int64("max-pieces", 10000, "Abort a game after this many spawned pieces.")
	flag.Parse()

	log.Println("Starting simulation...")

	report := &Report{
		Games:     *games,
		Seed:      *seed,
		MaxPieces: *maxPieces,
	}
	kindCounts := intmap.New[uint32, int64](tetris.NumKinds)

	startTime := time.Now()
	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)
		stats, err := simulate(gameSeed, *maxPieces, kindCounts)
		if err != nil {
			log.Fatalf("Game %d failed: %v", i, err)
		}

		report.TotalPieces += stats.PiecesLocked
		report.TotalLines += stats.LinesCleared
		report.TotalHolds += stats.Holds
		report.TotalHardDrops += stats.HardDrops
		for n := 1; n < len(stats.ClearCounts); n++ {
			report.ClearCounts[n] += stats.ClearCounts[n]
		}
		report.Survival.Samples = append(report.Survival.Samples, stats.Elapsed)
	}
	report.TotalTime = time.Since(startTime)
	report.Survival.Finalize()

	for kind := tetris.ShapeI; kind <= tetris.ShapeL; kind++ {
		count, _ := kindCounts.Get(uint32(kind))
		report.KindCounts = append(report.KindCounts, KindCount{
			Kind:  kind.String(),
			Count: count,
		})
	}

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// simulate plays one game to completion with a random command policy,
// recording every spawned kind into kindCounts.
func simulate(seed uint64, maxPieces int64, kindCounts *intmap.Map[uint32, int64]) (tetris.GameStats, error) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = seed
	game, err := tetris.NewGame(cfg)
	if err != nil {
		return tetris.GameStats{}, err
	}

	policy := rand.New(rand.NewPCG(seed, ^seed))
	lastSpawned := int64(0)

	for !game.Over() {
		snap := game.Snapshot()
		kind := uint32(snap.ActiveKind)
		stats := game.Stats()
		if stats.PiecesSpawned > lastSpawned {
			count, _ := kindCounts.Get(kind)
			kindCounts.Put(kind, count+1)
			lastSpawned = stats.PiecesSpawned
		}
		if stats.PiecesSpawned >= maxPieces {
			break
		}

		switch policy.IntN(10) {
		case 0, 1, 2:
			game.Move(1 - 2*policy.IntN(2))
		case 3, 4:
			game.Rotate(1 - 2*policy.IntN(2))
		case 5:
			game.SoftDrop()
		case 6:
			game.HardDrop()
		case 7:
			game.Hold()
		default:
			// Let gravity work.
		}
		game.Tick(tickStep)
	}

	return game.Stats(), nil
}
