package termhost

import (
	"image"
	"image/color"

	"github.com/phanxgames/bounce"
)

// Each terminal cell stands for CellWidth x CellHeight world pixels. A cell
// is drawn as two half-block pixels stacked vertically.
const (
	CellWidth  = 8
	CellHeight = 16
	halfHeight = CellHeight / 2
)

// Texture is a sprite resampled to half-cell resolution. It implements
// bounce.Texture with the size of the source image in world pixels.
type Texture struct {
	w, h  int
	cells *image.RGBA
}

// NewTexture resamples img to one pixel per half cell.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	cw := max((b.Dx()+CellWidth-1)/CellWidth, 1)
	ch := max((b.Dy()+halfHeight-1)/halfHeight, 1)
	return &Texture{w: b.Dx(), h: b.Dy(), cells: bounce.ScaleImage(img, cw, ch)}
}

// Size implements bounce.Texture.
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// sample returns the straight-alpha color at normalized coordinates (u, v)
// and whether it is opaque enough to draw.
func (t *Texture) sample(u, v float64) (bounce.Color, bool) {
	b := t.cells.Bounds()
	x := min(max(int(u*float64(b.Dx())), 0), b.Dx()-1)
	y := min(max(int(v*float64(b.Dy())), 0), b.Dy()-1)
	c := t.cells.RGBAAt(b.Min.X+x, b.Min.Y+y)
	if c.A < 128 {
		return bounce.Color{}, false
	}
	return straight(c), true
}

func straight(c color.RGBA) bounce.Color {
	a := float64(c.A)
	return bounce.Color{R: float64(c.R) / a, G: float64(c.G) / a, B: float64(c.B) / a, A: 1}
}
