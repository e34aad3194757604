package bounce

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the opaque background color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for velocities and sprite extents.
type Vec2 struct {
	X, Y float64
}

// Size is an integer extent in screen pixels, typically the window size.
type Size struct {
	W, H int
}

// Vec2 returns s as a floating-point vector.
func (s Size) Vec2() Vec2 {
	return Vec2{float64(s.W), float64(s.H)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inside reports whether r lies entirely within a window of the given size.
// Touching an edge counts as inside.
func (r Rect) Inside(dims Size) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.Right() <= float64(dims.W) && r.Bottom() <= float64(dims.H)
}

// Fits reports whether an extent of ext fits inside dims.
func (s Size) Fits(ext Vec2) bool {
	return ext.X <= float64(s.W) && ext.Y <= float64(s.H)
}

// ceilInt rounds v up to the next integer.
func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
