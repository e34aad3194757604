package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bounce"
)

// drawCommand is one recorded renderer call.
type drawCommand struct {
	fill  bool
	color bounce.Color
	tex   *Texture
	dst   bounce.Rect
}

// Renderer records the driver's Clear/DrawSprite/Present calls during Update
// and replays the last presented frame onto the screen in Draw.
type Renderer struct {
	pending []drawCommand
	frame   []drawCommand

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string

	overlay *fpsOverlay
}

// NewRenderer creates a renderer. showFPS enables the FPS/TPS overlay.
func NewRenderer(screenshotDir string, showFPS bool) *Renderer {
	r := &Renderer{ScreenshotDir: screenshotDir}
	if showFPS {
		r.overlay = &fpsOverlay{}
	}
	return r
}

// Clear implements bounce.Renderer. It starts a new frame.
func (r *Renderer) Clear(c bounce.Color) error {
	r.pending = append(r.pending[:0], drawCommand{fill: true, color: c})
	return nil
}

// DrawSprite implements bounce.Renderer.
func (r *Renderer) DrawSprite(tex bounce.Texture, dst bounce.Rect, tint bounce.Color) error {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return fmt.Errorf("draw sprite: unusable texture %T", tex)
	}
	if dst.W <= 0 || dst.H <= 0 {
		return fmt.Errorf("draw sprite: empty destination %v", dst)
	}
	r.pending = append(r.pending, drawCommand{tex: t, dst: dst, color: tint})
	return nil
}

// Present implements bounce.Renderer. The recorded frame becomes the one
// Draw shows.
func (r *Renderer) Present() error {
	r.frame, r.pending = r.pending, r.frame[:0]
	return nil
}

// Draw replays the last presented frame onto screen, then captures queued
// screenshots and draws the overlay.
func (r *Renderer) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range r.frame {
		cmd := &r.frame[i]
		if cmd.fill {
			screen.Fill(cmd.color.RGBA())
			continue
		}
		w, h := cmd.tex.Size()
		op.GeoM.Reset()
		op.GeoM.Scale(cmd.dst.W/float64(w), cmd.dst.H/float64(h))
		op.GeoM.Translate(cmd.dst.X, cmd.dst.Y)
		op.ColorScale.Reset()
		a := float32(cmd.color.A)
		op.ColorScale.Scale(float32(cmd.color.R)*a, float32(cmd.color.G)*a, float32(cmd.color.B)*a, a)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(cmd.tex.img, &op)
	}

	r.flushScreenshots(screen)

	if r.overlay != nil {
		r.overlay.draw(screen)
	}
}
