package bounce

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPalette is the sequence of logo tints cycled through on each bounce.
var DefaultPalette = []Color{
	{1, 1, 1, 1},
	{0.36, 0.80, 1, 1},
	{1, 0.35, 0.55, 1},
	{0.55, 1, 0.35, 1},
	{1, 0.85, 0.25, 1},
	{0.75, 0.45, 1, 1},
	{1, 0.55, 0.20, 1},
}

// DefaultTintDuration is the tween length, in seconds, of one tint change.
const DefaultTintDuration = 0.25

// TintCycler eases the sprite tint to the next palette color each time Next
// is called. Call Update(dt) every frame.
type TintCycler struct {
	palette  []Color
	index    int
	duration float32
	fn       ease.TweenFunc

	tweens [4]*gween.Tween
	color  Color
	Done   bool
}

// NewTintCycler creates a cycler that starts at palette[0]. A nil easing
// function means ease.OutQuad. With an empty palette the tint stays white.
func NewTintCycler(palette []Color, duration float32, fn ease.TweenFunc) *TintCycler {
	if fn == nil {
		fn = ease.OutQuad
	}
	c := &TintCycler{palette: palette, duration: duration, fn: fn, color: ColorWhite, Done: true}
	if len(palette) > 0 {
		c.color = palette[0]
	}
	return c
}

// Color returns the current tint.
func (c *TintCycler) Color() Color {
	return c.color
}

// Index returns the palette index of the tint being eased towards.
func (c *TintCycler) Index() int {
	return c.index
}

// Next starts a tween from the current tint to the next palette color,
// wrapping at the end of the palette.
func (c *TintCycler) Next() {
	if len(c.palette) < 2 {
		return
	}
	c.index = (c.index + 1) % len(c.palette)
	to := c.palette[c.index]

	if c.duration <= 0 {
		c.color = to
		c.Done = true
		return
	}
	c.tweens[0] = gween.New(float32(c.color.R), float32(to.R), c.duration, c.fn)
	c.tweens[1] = gween.New(float32(c.color.G), float32(to.G), c.duration, c.fn)
	c.tweens[2] = gween.New(float32(c.color.B), float32(to.B), c.duration, c.fn)
	c.tweens[3] = gween.New(float32(c.color.A), float32(to.A), c.duration, c.fn)
	c.Done = false
}

// Update advances the running tween by dt seconds.
func (c *TintCycler) Update(dt float32) {
	if c.Done {
		return
	}
	fields := [4]*float64{&c.color.R, &c.color.G, &c.color.B, &c.color.A}
	allDone := true
	for i, tw := range c.tweens {
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		c.color = c.palette[c.index]
	}
	c.Done = allDone
}
