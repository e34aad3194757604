package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bounce"
)

// eventBuffer is the capacity of the channel between the tcell poller and
// the frame loop.
const eventBuffer = 64

// Input forwards tcell events to the driver. A goroutine blocks in tcell's
// event loop and feeds a channel; PollEvent drains it without blocking, so
// the driver stays the only mutator of the world. It implements
// bounce.InputSource.
type Input struct {
	events chan tcell.Event
	quit   chan struct{}
}

// NewInput starts polling screen. Call Close before finalizing the screen.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(in.events, in.quit)
	return in
}

// PollEvent implements bounce.InputSource. Events with no meaning for the
// driver are skipped.
func (in *Input) PollEvent() (bounce.Event, bool) {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return bounce.Event{}, false
			}
			if out, ok := translate(ev); ok {
				return out, true
			}
		default:
			return bounce.Event{}, false
		}
	}
}

// Close stops the poller goroutine.
func (in *Input) Close() {
	select {
	case <-in.quit:
	default:
		close(in.quit)
	}
}

// translate maps a tcell event to a bounce event. Ctrl-C plays the role of
// the window close button.
func translate(ev tcell.Event) (bounce.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return bounce.KeyDownEvent(bounce.KeyEscape), true
		case tcell.KeyCtrlC:
			return bounce.QuitEvent(), true
		case tcell.KeyRune:
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				return bounce.KeyDownEvent(bounce.KeyQ), true
			}
		}
		return bounce.KeyDownEvent(bounce.KeyOther), true
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return bounce.ResizeEvent(cols*CellWidth, rows*CellHeight), true
	}
	return bounce.Event{}, false
}
