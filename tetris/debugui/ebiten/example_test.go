package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/gridlock/tetris"
	"github.com/plus3/gridlock/tetris/debugui"
	debugui_ebiten "github.com/plus3/gridlock/tetris/debugui/ebiten"
)

// Host implements ebiten.Game and overlays the debug panels on a
// running engine.
type Host struct {
	game    *tetris.Game
	overlay *debugui_ebiten.Overlay
	board   *debugui.BoardView
	stats   *debugui.StatsPanel
}

func (h *Host) Update() error {
	h.overlay.BeginFrame()

	h.game.Tick(1.0 / float64(ebiten.TPS()))
	h.board.Render(h.game.Snapshot())
	h.stats.Render(h.game, 1.0/float32(ebiten.TPS()))

	h.overlay.EndFrame()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw the ImGui overlay on top
	h.overlay.Draw(screen)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	overlay := debugui_ebiten.NewOverlay()
	overlay.CreateWindow("Debug Panels Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	game, err := tetris.NewGame(tetris.DefaultConfig())
	if err != nil {
		panic(err)
	}

	host := &Host{
		game:    game,
		overlay: overlay,
		board:   debugui.NewBoardView(16),
		stats:   debugui.NewStatsPanel(120),
	}

	if err := ebiten.RunGame(host); err != nil {
		panic(err)
	}
}
