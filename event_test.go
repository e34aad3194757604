package bounce

import "testing"

func TestShouldQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"quit", QuitEvent(), true},
		{"escape", KeyDownEvent(KeyEscape), true},
		{"q", KeyDownEvent(KeyQ), true},
		{"other key", KeyDownEvent(KeyOther), false},
		{"resize", ResizeEvent(10, 10), false},
		{"screenshot", Event{Type: EventScreenshot}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldQuit(tt.ev); got != tt.want {
				t.Errorf("ShouldQuit(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestEventQueueFIFO(t *testing.T) {
	var q EventQueue
	q.Push(ResizeEvent(1, 2))
	q.Push(QuitEvent())
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	ev, ok := q.PollEvent()
	if !ok || ev != ResizeEvent(1, 2) {
		t.Errorf("first = %+v, %v", ev, ok)
	}
	ev, ok = q.PollEvent()
	if !ok || ev.Type != EventQuit {
		t.Errorf("second = %+v, %v", ev, ok)
	}
	if _, ok := q.PollEvent(); ok {
		t.Error("queue should be empty")
	}
}

func TestMultiInputDrainsInOrder(t *testing.T) {
	a, b := &EventQueue{}, &EventQueue{}
	a.Push(KeyDownEvent(KeyOther))
	b.Push(QuitEvent())
	a.Push(ResizeEvent(5, 5))

	m := MultiInput{a, nil, b}
	var got []EventType
	for {
		ev, ok := m.PollEvent()
		if !ok {
			break
		}
		got = append(got, ev.Type)
	}
	want := []EventType{EventKeyDown, EventResize, EventQuit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if EventResize.String() != "resize" {
		t.Errorf("got %q", EventResize.String())
	}
	if EventType(99).String() != "EventType(99)" {
		t.Errorf("got %q", EventType(99).String())
	}
}
