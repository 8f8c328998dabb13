// Package debugui provides Dear ImGui inspection panels for a running
// game engine. Panels render from snapshots and stats only, so they
// never mutate engine state.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gridlock/tetris"
)

// StatsPanel shows the engine's cumulative counters alongside a frame
// time graph.
type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewStatsPanel creates a panel keeping historyFrames samples of frame
// time.
func NewStatsPanel(historyFrames int) *StatsPanel {
	return &StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render draws the stats window for the current frame.
func (sp *StatsPanel) Render(game *tetris.Game, deltaTime float32) {
	if !imgui.BeginV("Game Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sp.frameHistory[sp.frameIndex] = deltaTime * 1000.0
	sp.frameIndex = (sp.frameIndex + 1) % sp.historyFrames

	stats := game.Stats()

	imgui.Text(fmt.Sprintf("Elapsed: %.1fs", stats.Elapsed))
	imgui.Text(fmt.Sprintf("Pieces Spawned: %d", stats.PiecesSpawned))
	imgui.Text(fmt.Sprintf("Pieces Locked: %d", stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Hard Drops: %d", stats.HardDrops))
	imgui.Text(fmt.Sprintf("Holds: %d", stats.Holds))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))

	var avgFrameTime float32
	for _, ft := range sp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(sp.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sp.frameHistory[0], int32(len(sp.frameHistory)))

	if imgui.TreeNodeStr("Clear Breakdown") {
		names := [5]string{"", "Single", "Double", "Triple", "Tetris"}
		for n := 1; n < len(stats.ClearCounts); n++ {
			imgui.BulletText(fmt.Sprintf("%s: %d", names[n], stats.ClearCounts[n]))
		}
		imgui.TreePop()
	}

	if game.Over() {
		imgui.Separator()
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}

	imgui.End()
}
