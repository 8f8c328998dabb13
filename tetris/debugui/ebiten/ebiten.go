// Package ebiten provides Dear ImGui backend integration for hosting
// the debug panels inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before building panels each update, EndFrame after,
// and Draw from the host's Draw method.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates an overlay with a fresh Ebiten ImGui backend.
func NewOverlay() *Overlay {
	return &Overlay{EbitenBackend: ebitenbackend.NewEbitenBackend()}
}
