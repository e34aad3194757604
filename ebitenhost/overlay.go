package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlayInterval is how often the overlay text is refreshed.
const fpsOverlayInterval = 500 * time.Millisecond

// fpsOverlay displays the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate time.Time
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if now := time.Now(); now.Sub(o.lastUpdate) >= fpsOverlayInterval {
		o.lastUpdate = now
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
