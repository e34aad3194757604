package bounce

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Key    string `json:"key,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptedInput replays a JSON input script, one step per frame, for
// unattended runs and screenshots. It implements InputSource.
//
//	{"steps": [
//		{"action": "wait", "frames": 120},
//		{"action": "screenshot", "label": "first-bounce"},
//		{"action": "resize", "width": 320, "height": 240},
//		{"action": "key", "key": "q"}
//	]}
type ScriptedInput struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	pending   EventQueue
	frameDone bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, assetError("parse input script", err)
	}
	if len(script.Steps) == 0 {
		return nil, assetError("parse input script", fmt.Errorf("no steps"))
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, assetError("parse input script", fmt.Errorf("step %d: %w", i, err))
		}
	}
	return &ScriptedInput{steps: script.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "wait", "quit", "screenshot":
		return nil
	case "key":
		if _, ok := parseKey(st.Key); !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize to %dx%d", st.Width, st.Height)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

func parseKey(name string) (Key, bool) {
	switch name {
	case "escape", "esc":
		return KeyEscape, true
	case "q", "Q":
		return KeyQ, true
	case "other":
		return KeyOther, true
	}
	return KeyOther, false
}

// Done reports whether every step has been executed and delivered.
func (r *ScriptedInput) Done() bool {
	return r.cursor >= len(r.steps) && r.waitCount == 0 && r.pending.Len() == 0
}

// PollEvent implements InputSource. The first call of a frame advances the
// script by one step; later calls drain the events of that step. The final
// false return marks the end of the frame.
func (r *ScriptedInput) PollEvent() (Event, bool) {
	if !r.frameDone {
		r.frameDone = true
		r.step()
	}
	if ev, ok := r.pending.PollEvent(); ok {
		return ev, true
	}
	r.frameDone = false
	return Event{}, false
}

// step advances the script by one frame.
func (r *ScriptedInput) step() {
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		r.pending.Push(Event{Type: EventScreenshot, Label: st.Label})
	case "key":
		k, _ := parseKey(st.Key)
		r.pending.Push(KeyDownEvent(k))
	case "resize":
		r.pending.Push(ResizeEvent(st.Width, st.Height))
	case "quit":
		r.pending.Push(QuitEvent())
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
