// Package bounce is the simulation core and frame driver of a "bouncing
// logo" screensaver: a sprite travels across a window, reflects off its
// edges, changes tint and replays a sound on every bounce.
//
// The package has no windowing or audio device code. Hosts supply the
// collaborators through small interfaces ([Clock], [InputSource],
// [Renderer], [AudioPlayer], [Texture]) and drive a [Driver]:
//
//	d, err := bounce.NewDriver(bounce.DriverConfig{
//		Clock:    bounce.NewMonotonicClock(),
//		Input:    input,
//		Renderer: renderer,
//		Audio:    player,
//		Sprite:   texture,
//		Sound:    sound,
//		Window:   bounce.Size{W: 640, H: 480},
//		FramePeriod: bounce.DefaultFramePeriod,
//	})
//	if err != nil {
//		return err
//	}
//	return d.Run()
//
// Hosts whose native loop already paces frames (Ebitengine, vsync) call
// [Driver.Step] once per frame instead of [Driver.Run].
//
// # Simulation
//
// [World.Tick] moves the sprite by velocity times dt and resolves each axis
// on its own: a tentative position beyond a wall is clamped to that wall and
// the velocity component flips sign. The sprite never leaves the window, even
// for very large dt. [World.HitWall] is a one-tick flag the driver turns into
// a sound restart and a tint change.
//
// # Hosts
//
// Two hosts ship with the module: [github.com/phanxgames/bounce/ebitenhost]
// opens an Ebitengine window, and [github.com/phanxgames/bounce/termhost]
// draws into the terminal with tcell and plays audio through beep.
package bounce
