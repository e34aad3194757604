package bounce

import (
	"errors"
	"io"
	"log"
	"os"
	"time"
)

// Texture is a host-owned sprite image.
type Texture interface {
	// Size returns the texture extent in pixels.
	Size() (w, h int)
}

// Renderer draws one frame: Clear, then DrawSprite, then Present.
type Renderer interface {
	Clear(c Color) error
	DrawSprite(tex Texture, dst Rect, tint Color) error
	Present() error
}

// Screenshotter is implemented by renderers that can capture the next
// presented frame.
type Screenshotter interface {
	Screenshot(label string)
}

// AudioPlayer plays the collision sound. Stop followed by Play restarts the
// sound from its first sample.
type AudioPlayer interface {
	// Stop cancels any sound currently playing.
	Stop() error
	// Play starts s from the beginning.
	Play(s *Sound) error
}

// State is the driver's lifecycle state.
type State uint8

const (
	StateInit      State = iota // collaborators not yet validated
	StateRunning                // frames are being stepped
	StateSucceeded              // quit requested by the user
	StateFailed                 // a collaborator failed; see Driver.Err
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is an end state.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// DriverConfig wires a Driver to its collaborators.
type DriverConfig struct {
	Clock    Clock
	Input    InputSource
	Renderer Renderer
	Audio    AudioPlayer

	Sprite Texture
	Sound  *Sound

	// Window is the initial window size.
	Window Size
	// FramePeriod is the target frame time used by Run. Zero disables
	// pacing.
	FramePeriod time.Duration

	// Tint cycles the sprite color on each bounce. Nil draws untinted.
	Tint *TintCycler

	// Logger receives debug stats. Nil logs to stderr.
	Logger        *log.Logger
	Debug         bool
	DebugInterval int

	// Sleep pauses the self-paced loop. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// Driver is the frame loop: it polls input, advances the World by the wall
// time since the previous frame, renders the sprite and restarts the
// collision sound on every bounce. It is not safe for concurrent use.
type Driver struct {
	clock    Clock
	input    InputSource
	renderer Renderer
	audio    AudioPlayer
	sprite   Texture
	sound    *Sound
	tint     *TintCycler

	freq        uint64
	framePeriod time.Duration
	sleep       func(time.Duration)

	world World
	state State
	err   error

	logger        *log.Logger
	debug         bool
	debugInterval int
	stats         frameStats
}

// NewDriver validates the collaborators, reads the clock frequency once and
// places the sprite at the center of the window. The returned driver is in
// StateRunning.
func NewDriver(cfg DriverConfig) (*Driver, error) {
	var missing []error
	if cfg.Clock == nil {
		missing = append(missing, errors.New("clock is nil"))
	}
	if cfg.Input == nil {
		missing = append(missing, errors.New("input source is nil"))
	}
	if cfg.Renderer == nil {
		missing = append(missing, errors.New("renderer is nil"))
	}
	if cfg.Audio == nil {
		missing = append(missing, errors.New("audio player is nil"))
	}
	if cfg.Sprite == nil {
		missing = append(missing, errors.New("sprite texture is nil"))
	}
	if cfg.Sound == nil {
		missing = append(missing, errors.New("sound is nil"))
	}
	if len(missing) > 0 {
		return nil, setupError("new driver", errors.Join(missing...))
	}

	freq := cfg.Clock.Frequency()
	if freq == 0 {
		return nil, setupError("new driver", errors.New("clock frequency is zero"))
	}
	if cfg.Window.W <= 0 || cfg.Window.H <= 0 {
		return nil, setupError("new driver", errors.New("window size must be positive"))
	}
	sw, sh := cfg.Sprite.Size()
	sprite := Vec2{float64(sw), float64(sh)}
	if sw <= 0 || sh <= 0 || !cfg.Window.Fits(sprite) {
		return nil, setupError("new driver", errors.New("sprite does not fit the window"))
	}

	d := &Driver{
		clock:         cfg.Clock,
		input:         cfg.Input,
		renderer:      cfg.Renderer,
		audio:         cfg.Audio,
		sprite:        cfg.Sprite,
		sound:         cfg.Sound,
		tint:          cfg.Tint,
		freq:          freq,
		framePeriod:   cfg.FramePeriod,
		sleep:         cfg.Sleep,
		logger:        cfg.Logger,
		debug:         cfg.Debug,
		debugInterval: cfg.DebugInterval,
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if d.logger == nil {
		d.logger = NewLogger(os.Stderr)
	}
	if d.debugInterval <= 0 {
		d.debugInterval = 1
	}

	d.world.Init(cfg.Window, sprite, d.clock.Now())
	d.state = StateRunning
	return d, nil
}

// NewLogger returns the logger used for diagnostics, writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "[bounce] ", log.LstdFlags)
}

// World returns the simulation state. The pointer stays valid for the life
// of the driver; callers must not mutate it while the driver runs.
func (d *Driver) World() *World {
	return &d.world
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Err returns the failure that moved the driver to StateFailed, or nil.
func (d *Driver) Err() error {
	return d.err
}

// Step runs one frame. It returns the failure, if any, that ended the loop.
// Once the driver has reached a terminal state Step does nothing.
func (d *Driver) Step() error {
	if d.state != StateRunning {
		return d.err
	}
	frameStart := d.clock.Now()

	for {
		ev, ok := d.input.PollEvent()
		if !ok {
			break
		}
		d.handleEvent(ev)
		if d.state != StateRunning {
			return nil
		}
	}

	var f frameStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	now := d.clock.Now()
	dt := float64(now-d.world.PrevCounter) / float64(d.freq)
	d.world.PrevCounter = now
	d.world.Tick(dt)

	tint := ColorWhite
	if d.tint != nil {
		if d.world.HitWall {
			d.tint.Next()
		}
		d.tint.Update(float32(dt))
		tint = d.tint.Color()
	}

	if d.debug {
		f.tickTime = time.Since(t0)
		t0 = time.Now()
	}

	if err := d.render(tint); err != nil {
		return d.fail(err)
	}

	if d.debug {
		f.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	if d.world.HitWall {
		if err := d.audio.Stop(); err != nil {
			return d.fail(runtimeError("stop sound", err))
		}
		if err := d.audio.Play(d.sound); err != nil {
			return d.fail(runtimeError("play sound", err))
		}
		f.hits = 1
	}

	if d.debug {
		f.audioTime = time.Since(t0)
		f.frameTime = ticksToDuration(d.clock.Now()-frameStart, d.freq)
		d.stats.add(f)
		if d.stats.frames >= d.debugInterval {
			d.stats.debugLog(d.logger, &d.world)
		}
	}
	return nil
}

// Run steps frames until the user quits or a collaborator fails, sleeping
// the remainder of FramePeriod after each frame. It returns nil on a
// successful quit.
func (d *Driver) Run() error {
	for d.state == StateRunning {
		frameStart := d.clock.Now()
		if err := d.Step(); err != nil {
			return err
		}
		if d.state != StateRunning || d.framePeriod <= 0 {
			continue
		}
		elapsed := ticksToDuration(d.clock.Now()-frameStart, d.freq)
		if elapsed < d.framePeriod {
			d.sleep(d.framePeriod - elapsed)
		}
	}
	return d.err
}

func (d *Driver) handleEvent(ev Event) {
	switch {
	case ShouldQuit(ev):
		d.state = StateSucceeded
	case ev.Type == EventResize:
		d.world.Resize(ev.Width, ev.Height)
	case ev.Type == EventScreenshot:
		if s, ok := d.renderer.(Screenshotter); ok {
			s.Screenshot(ev.Label)
		}
	}
}

func (d *Driver) render(tint Color) error {
	if err := d.renderer.Clear(ColorBlack); err != nil {
		return runtimeError("clear", err)
	}
	if err := d.renderer.DrawSprite(d.sprite, d.world.Rect, tint); err != nil {
		return runtimeError("draw sprite", err)
	}
	if err := d.renderer.Present(); err != nil {
		return runtimeError("present", err)
	}
	return nil
}

func (d *Driver) fail(err error) error {
	d.state = StateFailed
	d.err = err
	return err
}
