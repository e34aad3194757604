// Package termhost runs the bouncing-logo screensaver in a terminal. The
// sprite is rasterized into half-block cells with tcell, the collision sound
// plays through beep's speaker and the driver paces itself with an explicit
// sleep against Config.FramePeriod.
package termhost

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bounce"
)

var logger = bounce.NewLogger(os.Stderr)

// App bundles every collaborator handle of one terminal run. Close releases
// them in reverse acquisition order.
type App struct {
	screen  tcell.Screen
	input   *Input
	speaker *Speaker
	sound   *bounce.Sound
	texture *Texture
	driver  *bounce.Driver
}

// Open initializes the terminal and the speaker, loads the media files and
// builds the driver. Handles acquired before a failure are released before
// Open returns.
func Open(cfg bounce.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, bounce.NewError(bounce.KindSetup, "create screen", err)
	}
	if err := screen.Init(); err != nil {
		return nil, bounce.NewError(bounce.KindSetup, "init screen", err)
	}
	app := &App{screen: screen}

	app.speaker, err = OpenSpeaker(cfg.SampleRate)
	if err != nil {
		app.Close()
		return nil, bounce.NewError(bounce.KindSetup, "open speaker", err)
	}

	if err := app.build(cfg, app.speaker); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// build loads the media and wires the driver to the screen and audio.
func (a *App) build(cfg bounce.Config, audio bounce.AudioPlayer) error {
	var err error
	a.sound, err = bounce.LoadWAV(cfg.SoundPath(), cfg.SampleRate)
	if err != nil {
		return err
	}
	img, err := bounce.LoadImage(cfg.SpritePath(), cfg.SpriteScale)
	if err != nil {
		return err
	}
	a.texture = NewTexture(img)

	a.screen.HideCursor()
	a.input = NewInput(a.screen)
	var input bounce.InputSource = a.input
	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return bounce.NewError(bounce.KindAsset, "read input script", err)
		}
		script, err := bounce.LoadInputScript(data)
		if err != nil {
			return err
		}
		input = bounce.MultiInput{a.input, script}
	}

	var tint *bounce.TintCycler
	if len(cfg.Palette) > 0 {
		tint = bounce.NewTintCycler(cfg.Palette, cfg.TintDuration, nil)
	}

	cols, rows := a.screen.Size()
	a.driver, err = bounce.NewDriver(bounce.DriverConfig{
		Clock:         bounce.NewMonotonicClock(),
		Input:         input,
		Renderer:      NewRenderer(a.screen),
		Audio:         audio,
		Sprite:        a.texture,
		Sound:         a.sound,
		Window:        bounce.Size{W: cols * CellWidth, H: rows * CellHeight},
		FramePeriod:   cfg.FramePeriod,
		Tint:          tint,
		Logger:        logger,
		Debug:         cfg.Debug,
		DebugInterval: cfg.DebugInterval,
	})
	return err
}

// Driver returns the frame driver.
func (a *App) Driver() *bounce.Driver {
	return a.driver
}

// Run blocks until the user quits or a collaborator fails.
func (a *App) Run() error {
	return a.driver.Run()
}

// Close stops input polling, releases the speaker and restores the
// terminal. It is safe to call on a partially opened App.
func (a *App) Close() {
	if a.input != nil {
		a.input.Close()
		a.input = nil
	}
	a.texture = nil
	a.sound = nil
	if a.speaker != nil {
		a.speaker.Close()
		a.speaker = nil
	}
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
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
