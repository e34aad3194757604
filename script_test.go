package bounce

import "testing"

// drainFrame polls src until it reports the end of the frame.
func drainFrame(src InputSource) []Event {
	var out []Event
	for {
		ev, ok := src.PollEvent()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "resize", "width": 320, "height": 240},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "q"}
		]
	}`)

	runner, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Width != 320 || runner.steps[1].Height != 240 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadInputScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "click"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "space"}]}`},
		{"bad resize", `{"steps": [{"action": "resize", "width": 0, "height": 10}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, KindAsset) {
				t.Errorf("kind: got %v, want asset", err)
			}
		})
	}
}

func TestScriptedInputOneStepPerFrame(t *testing.T) {
	runner, err := LoadInputScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "a"},
		{"action": "wait", "frames": 2},
		{"action": "resize", "width": 100, "height": 80},
		{"action": "quit"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	frames := [][]Event{}
	for i := 0; i < 6; i++ {
		frames = append(frames, drainFrame(runner))
	}

	if len(frames[0]) != 1 || frames[0][0].Type != EventScreenshot || frames[0][0].Label != "a" {
		t.Errorf("frame 0 = %v", frames[0])
	}
	if len(frames[1]) != 0 || len(frames[2]) != 0 {
		t.Errorf("wait frames should be empty: %v %v", frames[1], frames[2])
	}
	if len(frames[3]) != 1 || frames[3][0] != ResizeEvent(100, 80) {
		t.Errorf("frame 3 = %v", frames[3])
	}
	if len(frames[4]) != 1 || frames[4][0].Type != EventQuit {
		t.Errorf("frame 4 = %v", frames[4])
	}
	if len(frames[5]) != 0 {
		t.Errorf("frame 5 = %v, want empty", frames[5])
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptedInputDoneWhileWaiting(t *testing.T) {
	runner, err := LoadInputScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	drainFrame(runner)
	if runner.Done() {
		t.Error("runner should not be done while frames remain to wait")
	}
	drainFrame(runner)
	drainFrame(runner)
	if !runner.Done() {
		t.Error("runner should be done after the wait elapsed")
	}
}
