// Package ebitenhost runs the bouncing-logo screensaver in an Ebitengine
// window. Frames are paced by vsync: the driver is stepped once per
// Game.Update with ebiten's TPS synced to the display rate.
package ebitenhost

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bounce"
)

var logger = bounce.NewLogger(os.Stderr)

// App bundles every collaborator handle of one windowed run. Close releases
// them in reverse acquisition order.
type App struct {
	cfg      bounce.Config
	player   *Player
	sound    *bounce.Sound
	texture  *Texture
	renderer *Renderer
	input    *Input
	driver   *bounce.Driver
	game     *Game
}

// Open configures the window, opens audio, loads the media files and builds
// the driver. Handles acquired before a failure are released before Open
// returns.
func Open(cfg bounce.Config) (app *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app = &App{cfg: cfg}
	defer func() {
		if err != nil {
			app.Close()
			app = nil
		}
	}()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	app.player, err = NewPlayer(cfg.SampleRate)
	if err != nil {
		return app, bounce.NewError(bounce.KindSetup, "open audio", err)
	}

	app.sound, err = bounce.LoadWAV(cfg.SoundPath(), cfg.SampleRate)
	if err != nil {
		return app, err
	}

	img, err := bounce.LoadImage(cfg.SpritePath(), cfg.SpriteScale)
	if err != nil {
		return app, err
	}
	app.texture = NewTexture(img)
	sw, sh := app.texture.Size()
	// The world never needs a window smaller than the sprite.
	ebiten.SetWindowSizeLimits(sw, sh, -1, -1)

	app.renderer = NewRenderer(cfg.ScreenshotDir, cfg.ShowFPS)
	app.input = NewInput(cfg.Width, cfg.Height)

	var input bounce.InputSource = app.input
	if cfg.ScriptPath != "" {
		script, err := loadScript(cfg.ScriptPath)
		if err != nil {
			return app, err
		}
		input = bounce.MultiInput{app.input, script}
	}

	var tint *bounce.TintCycler
	if len(cfg.Palette) > 0 {
		tint = bounce.NewTintCycler(cfg.Palette, cfg.TintDuration, nil)
	}

	app.driver, err = bounce.NewDriver(bounce.DriverConfig{
		Clock:         bounce.NewMonotonicClock(),
		Input:         input,
		Renderer:      app.renderer,
		Audio:         app.player,
		Sprite:        app.texture,
		Sound:         app.sound,
		Window:        bounce.Size{W: cfg.Width, H: cfg.Height},
		Tint:          tint,
		Logger:        logger,
		Debug:         cfg.Debug,
		DebugInterval: cfg.DebugInterval,
	})
	if err != nil {
		return app, err
	}
	app.game = NewGame(app.driver, app.input, app.renderer)
	return app, nil
}

func loadScript(path string) (*bounce.ScriptedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bounce.NewError(bounce.KindAsset, "read input script", err)
	}
	return bounce.LoadInputScript(data)
}

// Driver returns the frame driver.
func (a *App) Driver() *bounce.Driver {
	return a.driver
}

// Run opens the window and blocks until the user quits or a collaborator
// fails.
func (a *App) Run() error {
	if err := ebiten.RunGame(a.game); err != nil {
		return bounce.NewError(bounce.KindRuntime, "run game", err)
	}
	return a.driver.Err()
}

// Close releases the texture, sound and audio players. It is safe to call
// on a partially opened App.
func (a *App) Close() error {
	var errs []error
	if a.texture != nil {
		a.texture.Dispose()
		a.texture = nil
	}
	a.sound = nil
	if a.player != nil {
		if err := a.player.Close(); err != nil {
			errs = append(errs, err)
		}
		a.player = nil
	}
	return errors.Join(errs...)
}

// Run opens an App for cfg, runs it and releases it.
func Run(cfg bounce.Config) error {
	app, err := Open(cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run()
}
