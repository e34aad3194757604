package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bounce"
)

// Input turns Ebitengine keyboard, window-close and layout changes into
// bounce events. It implements bounce.InputSource.
type Input struct {
	queue   bounce.EventQueue
	keyBuf  []ebiten.Key
	curW    int
	curH    int
	closing bool
}

// NewInput returns an input source for a window of the given initial size.
func NewInput(w, h int) *Input {
	return &Input{curW: w, curH: h}
}

// collect reads this tick's keyboard and window state. Called once at the
// start of every Game.Update.
func (in *Input) collect() {
	if ebiten.IsWindowBeingClosed() && !in.closing {
		in.closing = true
		in.queue.Push(bounce.QuitEvent())
	}
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.queue.Push(bounce.KeyDownEvent(keyFor(k)))
	}
}

// layout records the outside size reported by Game.Layout and queues a
// resize event when it changed.
func (in *Input) layout(w, h int) {
	if w == in.curW && h == in.curH {
		return
	}
	in.curW, in.curH = w, h
	in.queue.Push(bounce.ResizeEvent(w, h))
}

// PollEvent implements bounce.InputSource.
func (in *Input) PollEvent() (bounce.Event, bool) {
	return in.queue.PollEvent()
}

func keyFor(k ebiten.Key) bounce.Key {
	switch k {
	case ebiten.KeyEscape:
		return bounce.KeyEscape
	case ebiten.KeyQ:
		return bounce.KeyQ
	default:
		return bounce.KeyOther
	}
}
