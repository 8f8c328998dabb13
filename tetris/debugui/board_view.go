package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/gridlock/tetris"
)

// BoardView renders the grid, the active piece, its ghost, and the
// hold and preview readouts into an ImGui window.
type BoardView struct {
	cellSize  float32
	showGhost bool
}

// NewBoardView creates a board view drawing cells at cellSize pixels.
func NewBoardView(cellSize float32) *BoardView {
	return &BoardView{cellSize: cellSize, showGhost: true}
}

// Render draws the board window from the given snapshot.
func (bv *BoardView) Render(snap tetris.Snapshot) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Show Ghost", &bv.showGhost)
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))

	origin := imgui.CursorScreenPos()
	drawList := imgui.WindowDrawList()

	gridColor := imgui.ColorU32Vec4(imgui.NewVec4(0.25, 0.25, 0.25, 1.0))
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			min := bv.cellMin(origin, x, y)
			max := bv.cellMax(origin, x, y)
			if kind := snap.Cells[y][x]; kind != tetris.ShapeNone {
				drawList.AddRectFilled(min, max, kindColorU32(kind, 1.0))
			}
			drawList.AddRect(min, max, gridColor)
		}
	}

	if bv.showGhost && !snap.Over {
		for _, c := range snap.Ghost {
			drawList.AddRectFilled(bv.cellMin(origin, c.X, c.Y), bv.cellMax(origin, c.X, c.Y),
				kindColorU32(snap.ActiveKind, 0.3))
		}
	}
	for _, c := range snap.Active {
		if c.Y < 0 {
			continue
		}
		drawList.AddRectFilled(bv.cellMin(origin, c.X, c.Y), bv.cellMax(origin, c.X, c.Y),
			kindColorU32(snap.ActiveKind, 1.0))
	}

	// Reserve the drawn area so following widgets land below the grid.
	imgui.Dummy(imgui.NewVec2(float32(snap.Width)*bv.cellSize, float32(snap.Height)*bv.cellSize))

	imgui.Separator()
	if snap.Held != tetris.ShapeNone {
		imgui.Text(fmt.Sprintf("Held: %s", snap.Held))
	} else {
		imgui.Text("Held: -")
	}
	for i, kind := range snap.Next {
		imgui.Text(fmt.Sprintf("Next %d: %s", i+1, kind))
	}

	imgui.End()
}

func (bv *BoardView) cellMin(origin imgui.Vec2, x, y int) imgui.Vec2 {
	return imgui.NewVec2(origin.X+float32(x)*bv.cellSize, origin.Y+float32(y)*bv.cellSize)
}

func (bv *BoardView) cellMax(origin imgui.Vec2, x, y int) imgui.Vec2 {
	return imgui.NewVec2(origin.X+float32(x+1)*bv.cellSize, origin.Y+float32(y+1)*bv.cellSize)
}

func kindColorU32(kind tetris.ShapeKind, alpha float32) uint32 {
	c := kind.Color()
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0, alpha))
}
