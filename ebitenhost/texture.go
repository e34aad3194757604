package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a sprite image uploaded to the GPU. It implements
// bounce.Texture.
type Texture struct {
	img *ebiten.Image
}

// NewTexture uploads img.
func NewTexture(img image.Image) *Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

// Size implements bounce.Texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying Ebitengine image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Dispose releases the GPU image.
func (t *Texture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
