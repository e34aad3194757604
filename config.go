package bounce

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// DefaultFramePeriod is the target frame time of the self-paced loop (144 Hz).
const DefaultFramePeriod = time.Second / 144

// DefaultSampleRate is the audio output rate the collision sound is
// resampled to.
const DefaultSampleRate = 48000

// Config holds the parameters shared by every host. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Title  string
	Width  int
	Height int

	// MediaDir is the directory holding SpriteFile and SoundFile.
	MediaDir   string
	SpriteFile string
	SoundFile  string
	// SpriteScale scales the decoded sprite image before use.
	SpriteScale float64

	SampleRate int
	// FramePeriod is the self-paced target frame time. Zero disables
	// pacing (vsync or host-paced loops).
	FramePeriod time.Duration

	// Palette is cycled on every bounce. Nil keeps the sprite untinted.
	Palette      []Color
	TintDuration float32

	// ScriptPath optionally names a JSON input script replayed after the
	// live input each frame.
	ScriptPath    string
	ScreenshotDir string

	ShowFPS bool
	Debug   bool
	// DebugInterval is the number of frames between debug stat lines.
	DebugInterval int
}

// DefaultConfig returns the configuration of the stock screensaver.
func DefaultConfig() Config {
	return Config{
		Title:         "Vine Boom Sound Effect Machine",
		Width:         640,
		Height:        480,
		MediaDir:      "media",
		SpriteFile:    "dvd.svg",
		SoundFile:     "effect.wav",
		SpriteScale:   1.0 / 3,
		SampleRate:    DefaultSampleRate,
		FramePeriod:   DefaultFramePeriod,
		Palette:       DefaultPalette,
		TintDuration:  DefaultTintDuration,
		ScreenshotDir: "screenshots",
		DebugInterval: 144,
	}
}

// SpritePath returns the sprite file path joined with MediaDir.
func (c Config) SpritePath() string {
	return filepath.Join(c.MediaDir, c.SpriteFile)
}

// SoundPath returns the sound file path joined with MediaDir.
func (c Config) SoundPath() string {
	return filepath.Join(c.MediaDir, c.SoundFile)
}

// Validate reports every invalid field, joined into one setup error.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.SpriteFile == "" {
		errs = append(errs, errors.New("sprite file is empty"))
	}
	if c.SoundFile == "" {
		errs = append(errs, errors.New("sound file is empty"))
	}
	if c.SpriteScale < 0 {
		errs = append(errs, fmt.Errorf("sprite scale %v is negative", c.SpriteScale))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate %d must be positive", c.SampleRate))
	}
	if c.FramePeriod < 0 {
		errs = append(errs, fmt.Errorf("frame period %v is negative", c.FramePeriod))
	}
	if c.Debug && c.DebugInterval <= 0 {
		errs = append(errs, fmt.Errorf("debug interval %d must be positive", c.DebugInterval))
	}
	if len(errs) > 0 {
		return setupError("validate config", errors.Join(errs...))
	}
	return nil
}
