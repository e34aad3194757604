package bounce

import "fmt"

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventQuit       EventType = iota // window close button or host shutdown
	EventKeyDown                     // a key was pressed
	EventResize                      // the window was resized
	EventScreenshot                  // capture the next presented frame
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventResize:
		return "resize"
	case EventScreenshot:
		return "screenshot"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Key identifies a keyboard key. Only the keys the driver reacts to are
// named; hosts report everything else as KeyOther.
type Key uint8

const (
	KeyOther Key = iota
	KeyEscape
	KeyQ
)

// Event is a single input event. Only the fields relevant to Type are set.
type Event struct {
	Type EventType
	// Key is valid for EventKeyDown.
	Key Key
	// Width and Height are valid for EventResize.
	Width, Height int
	// Label is valid for EventScreenshot.
	Label string
}

// QuitEvent returns an EventQuit.
func QuitEvent() Event { return Event{Type: EventQuit} }

// KeyDownEvent returns an EventKeyDown for k.
func KeyDownEvent(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// ResizeEvent returns an EventResize for a w x h window.
func ResizeEvent(w, h int) Event { return Event{Type: EventResize, Width: w, Height: h} }

// InputSource produces the input events of one frame. PollEvent returns
// false once the queue is empty; the driver calls it until then every frame.
type InputSource interface {
	PollEvent() (Event, bool)
}

// ShouldQuit reports whether ev ends the program successfully: the close
// button, Escape or Q.
func ShouldQuit(ev Event) bool {
	switch ev.Type {
	case EventQuit:
		return true
	case EventKeyDown:
		return ev.Key == KeyEscape || ev.Key == KeyQ
	}
	return false
}

// MultiInput chains several input sources. Each source is drained in order
// before the next one is polled.
type MultiInput []InputSource

// PollEvent implements InputSource.
func (m MultiInput) PollEvent() (Event, bool) {
	for _, src := range m {
		if src == nil {
			continue
		}
		if ev, ok := src.PollEvent(); ok {
			return ev, true
		}
	}
	return Event{}, false
}

// EventQueue is a FIFO InputSource that hosts fill from their native event
// loop.
type EventQueue struct {
	events []Event
}

// Push appends ev to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// PollEvent implements InputSource.
func (q *EventQueue) PollEvent() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	copy(q.events, q.events[1:])
	q.events[len(q.events)-1] = Event{}
	q.events = q.events[:len(q.events)-1]
	return ev, true
}
