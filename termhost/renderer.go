package termhost

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bounce"
)

// upperHalf draws the top half of a cell in the foreground color and the
// bottom half in the background color.
const upperHalf = '▀'

// Renderer draws frames into a tcell screen. It implements bounce.Renderer.
type Renderer struct {
	screen tcell.Screen
	bg     bounce.Color
}

// NewRenderer returns a renderer over screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, bg: bounce.ColorBlack}
}

// Clear implements bounce.Renderer.
func (r *Renderer) Clear(c bounce.Color) error {
	r.bg = c
	r.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
	return nil
}

// DrawSprite implements bounce.Renderer. Every half cell whose center lies
// inside dst takes the texture color at that point.
func (r *Renderer) DrawSprite(tex bounce.Texture, dst bounce.Rect, tint bounce.Color) error {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.cells == nil {
		return fmt.Errorf("draw sprite: unusable texture %T", tex)
	}
	if dst.W <= 0 || dst.H <= 0 {
		return fmt.Errorf("draw sprite: empty destination %v", dst)
	}

	cols, rows := r.screen.Size()
	x0 := max(int(math.Floor(dst.X/CellWidth)), 0)
	x1 := min(int(math.Ceil(dst.Right()/CellWidth)), cols)
	y0 := max(int(math.Floor(dst.Y/CellHeight)), 0)
	y1 := min(int(math.Ceil(dst.Bottom()/CellHeight)), rows)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			top, topOK := r.halfCell(t, dst, tint, cx, 2*cy)
			bottom, bottomOK := r.halfCell(t, dst, tint, cx, 2*cy+1)
			if !topOK && !bottomOK {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			r.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	return nil
}

// halfCell returns the color of half-cell (cx, hy) and whether the sprite
// covers it. Uncovered half cells take the background color.
func (r *Renderer) halfCell(t *Texture, dst bounce.Rect, tint bounce.Color, cx, hy int) (bounce.Color, bool) {
	px := float64(cx*CellWidth) + CellWidth/2
	py := float64(hy*halfHeight) + halfHeight/2
	if px < dst.X || px >= dst.Right() || py < dst.Y || py >= dst.Bottom() {
		return r.bg, false
	}
	c, ok := t.sample((px-dst.X)/dst.W, (py-dst.Y)/dst.H)
	if !ok {
		return r.bg, false
	}
	return c.Mul(tint), true
}

// Present implements bounce.Renderer.
func (r *Renderer) Present() error {
	r.screen.Show()
	return nil
}

func tcellColor(c bounce.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
