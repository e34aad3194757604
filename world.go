package bounce

// DefaultVelocity is the initial sprite velocity in pixels per second.
var DefaultVelocity = Vec2{200, 200}

// World is the bouncing-sprite simulation state. It is owned by a single
// Driver and mutated only by Tick and Resize.
type World struct {
	// Dims is the current window size in pixels.
	Dims Size
	// Rect is the sprite bounds. After every Tick it lies inside Dims.
	Rect Rect
	// Velocity is in pixels per second. Neither component is zero.
	Velocity Vec2
	// HitWall is set when the latest Tick reflected the sprite off at least
	// one wall. Cleared at the start of every Tick.
	HitWall bool
	// PrevCounter is the clock reading of the previous frame.
	PrevCounter uint64
}

// Init places a sprite of the given extent at the center of a window of size
// dims, moving at DefaultVelocity. now is the clock reading used as the
// previous-frame timestamp for the first Tick.
//
// The sprite must fit inside dims; callers check this with Size.Fits.
func (w *World) Init(dims Size, sprite Vec2, now uint64) {
	w.Dims = dims
	w.Rect = Rect{
		X: float64(dims.W)/2 - sprite.X/2,
		Y: float64(dims.H)/2 - sprite.Y/2,
		W: sprite.X,
		H: sprite.Y,
	}
	w.Velocity = DefaultVelocity
	w.HitWall = false
	w.PrevCounter = now
}

// Tick advances the sprite by dt seconds. Each axis is resolved on its own,
// X then Y: a tentative position past a wall is clamped to the wall and that
// velocity component is negated. A corner hit flips both components and sets
// HitWall once. Landing exactly on a wall is not a hit.
func (w *World) Tick(dt float64) {
	w.HitWall = false

	nx := w.Rect.X + w.Velocity.X*dt
	ny := w.Rect.Y + w.Velocity.Y*dt

	w.Rect.X, w.Velocity.X = w.resolve(nx, w.Rect.W, float64(w.Dims.W), w.Velocity.X)
	w.Rect.Y, w.Velocity.Y = w.resolve(ny, w.Rect.H, float64(w.Dims.H), w.Velocity.Y)
}

// resolve clamps one axis of the tentative position p for a sprite of the
// given extent inside [0, limit] and returns the new position and velocity.
func (w *World) resolve(p, extent, limit, v float64) (float64, float64) {
	switch {
	case p+extent > limit:
		w.HitWall = true
		return limit - extent, -v
	case p < 0:
		w.HitWall = true
		return 0, -v
	default:
		return p, v
	}
}

// Resize replaces the window size. The new size is raised to at least the
// sprite extent so the next Tick can always bring the sprite back inside.
func (w *World) Resize(width, height int) {
	w.Dims = Size{
		W: max(width, ceilInt(w.Rect.W), 1),
		H: max(height, ceilInt(w.Rect.H), 1),
	}
}
