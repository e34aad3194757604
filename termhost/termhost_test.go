package termhost

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/phanxgames/bounce"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func TestNewTextureSize(t *testing.T) {
	tex := NewTexture(solidImage(120, 60, color.RGBA{255, 255, 255, 255}))
	if w, h := tex.Size(); w != 120 || h != 60 {
		t.Errorf("Size = %dx%d, want 120x60", w, h)
	}
	if b := tex.cells.Bounds(); b.Dx() != 15 || b.Dy() != 8 {
		t.Errorf("cell image = %dx%d, want 15x8", b.Dx(), b.Dy())
	}
}

func TestTextureSampleTransparent(t *testing.T) {
	tex := NewTexture(solidImage(16, 16, color.RGBA{}))
	if _, ok := tex.sample(0.5, 0.5); ok {
		t.Error("transparent texture should not be drawn")
	}
}

func TestRendererDrawsSprite(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	r := NewRenderer(s)
	tex := NewTexture(solidImage(32, 32, color.RGBA{255, 0, 0, 255}))

	if err := r.Clear(bounce.ColorBlack); err != nil {
		t.Fatal(err)
	}
	// 32x32 px at (16, 16): columns 2-5, half rows 2-5 -> cell rows 1-2.
	if err := r.DrawSprite(tex, bounce.Rect{X: 16, Y: 16, W: 32, H: 32}, bounce.ColorWhite); err != nil {
		t.Fatal(err)
	}
	if err := r.Present(); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			cell := cellAt(s, x, y)
			inside := x >= 2 && x < 6 && y >= 1 && y < 3
			drawn := len(cell.Runes) > 0 && cell.Runes[0] == upperHalf
			if inside != drawn {
				t.Errorf("cell (%d, %d): drawn = %v, want %v", x, y, drawn, inside)
			}
		}
	}

	fg, bg, _ := cellAt(s, 3, 1).Style.Decompose()
	red := tcell.NewRGBColor(255, 0, 0)
	if fg != red || bg != red {
		t.Errorf("inner cell colors = %v/%v, want red/red", fg, bg)
	}
}

func TestRendererAppliesTint(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	r := NewRenderer(s)
	tex := NewTexture(solidImage(16, 16, color.RGBA{255, 255, 255, 255}))

	r.Clear(bounce.ColorBlack)
	tint := bounce.Color{R: 0, G: 1, B: 0, A: 1}
	if err := r.DrawSprite(tex, bounce.Rect{X: 0, Y: 0, W: 16, H: 16}, tint); err != nil {
		t.Fatal(err)
	}
	r.Present()

	fg, _, _ := cellAt(s, 0, 0).Style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("fg = %v, want green", fg)
	}
}

type otherTexture struct{}

func (otherTexture) Size() (int, int) { return 1, 1 }

func TestRendererRejectsForeignTexture(t *testing.T) {
	r := NewRenderer(newSimScreen(t, 10, 5))
	if err := r.DrawSprite(otherTexture{}, bounce.Rect{W: 8, H: 8}, bounce.ColorWhite); err == nil {
		t.Error("expected error for foreign texture")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want bounce.Event
		ok   bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), bounce.KeyDownEvent(bounce.KeyEscape), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), bounce.KeyDownEvent(bounce.KeyQ), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), bounce.KeyDownEvent(bounce.KeyQ), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), bounce.QuitEvent(), true},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), bounce.KeyDownEvent(bounce.KeyOther), true},
		{"resize", tcell.NewEventResize(40, 12), bounce.ResizeEvent(40*CellWidth, 12*CellHeight), true},
		{"interrupt", tcell.NewEventInterrupt(nil), bounce.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInputForwardsInjectedKeys(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	in := NewInput(s)
	defer in.Close()

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := in.PollEvent()
		if ok && ev.Type == bounce.EventKeyDown {
			if ev.Key != bounce.KeyQ {
				t.Errorf("key = %v, want KeyQ", ev.Key)
			}
			return
		}
		if !ok {
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatal("injected key never arrived")
}

type countingAudio struct{ stops, plays int }

func (a *countingAudio) Stop() error { a.stops++; return nil }

func (a *countingAudio) Play(*bounce.Sound) error { a.plays++; return nil }

func writeMedia(t *testing.T, dir string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, "dvd.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(48, 32, color.RGBA{255, 255, 255, 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rate := beep.SampleRate(bounce.DefaultSampleRate)
	sine, err := generators.SineTone(rate, 220)
	if err != nil {
		t.Fatal(err)
	}
	f, err = os.Create(filepath.Join(dir, "effect.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(20*time.Millisecond), sine), format); err != nil {
		t.Fatal(err)
	}
	f.Close()
}

func TestAppRunsScriptToQuit(t *testing.T) {
	dir := t.TempDir()
	writeMedia(t, dir)
	script := filepath.Join(dir, "script.json")
	if err := os.WriteFile(script, []byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "resize", "width": 96, "height": 64},
		{"action": "wait", "frames": 2},
		{"action": "key", "key": "q"}
	]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := bounce.DefaultConfig()
	cfg.MediaDir = dir
	cfg.SpriteFile = "dvd.png"
	cfg.SpriteScale = 1
	cfg.ScriptPath = script
	cfg.FramePeriod = time.Millisecond

	screen := newSimScreen(t, 40, 12)
	audio := &countingAudio{}
	app := &App{screen: screen}
	if err := app.build(cfg, audio); err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.input.Close()

	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	d := app.Driver()
	if d.State() != bounce.StateSucceeded {
		t.Errorf("State = %v, want succeeded", d.State())
	}
	w := d.World()
	if !w.Rect.Inside(w.Dims) {
		t.Errorf("sprite %v outside window %v", w.Rect, w.Dims)
	}
	if audio.stops != audio.plays {
		t.Errorf("stops = %d, plays = %d; every play should follow a stop", audio.stops, audio.plays)
	}
}

func TestAppBuildMissingMedia(t *testing.T) {
	cfg := bounce.DefaultConfig()
	cfg.MediaDir = t.TempDir()
	app := &App{screen: newSimScreen(t, 40, 12)}
	err := app.build(cfg, &countingAudio{})
	if !bounce.IsKind(err, bounce.KindAsset) {
		t.Errorf("build = %v, want asset error", err)
	}
}
