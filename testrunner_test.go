package pagedots

import (
	"strings"
	"testing"
)

func TestLoadGestureScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tap", "page": 4},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 10, "fromY": 5, "toX": 40, "toY": 5, "frames": 6},
			{"action": "expect", "page": 1}
		]
	}`)

	runner, err := LoadGestureScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tap" || runner.steps[0].Page != 4 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].FromX != 10 || runner.steps[2].ToX != 40 || runner.steps[2].Frames != 6 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadGestureScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse gesture script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGestureScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, c *Control, script string) *GestureRunner {
	t.Helper()
	runner, err := LoadGestureScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	c.SetGestureRunner(runner)
	for i := 0; i < 200 && !runner.Done(); i++ {
		c.UpdateWithDelta(frame)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	return runner
}

func TestGestureRunnerTapAndDrag(t *testing.T) {
	c, state := newTestControl(t)

	// After tapping page 4 the dots are [2 7 12 17 22] wide and page 3's dot
	// is centred at x=107.5; page 4's at x=135.
	runner := runScript(t, c, `{"steps": [
		{"action": "tap", "page": 4},
		{"action": "expect", "page": 4},
		{"action": "drag", "fromX": 135, "fromY": 29, "toX": 91, "toY": 29, "frames": 3},
		{"action": "wait", "frames": 2},
		{"action": "expect", "page": 3}
	]}`)

	if f := runner.Failures(); len(f) != 0 {
		t.Errorf("unexpected failures: %v", f)
	}
	if state.CurrentPage() != 3 {
		t.Errorf("CurrentPage = %d, want 3", state.CurrentPage())
	}
}

func TestGestureRunnerRecordsFailures(t *testing.T) {
	c, _ := newTestControl(t)
	c.SetConfig(c.Config().WithMaxItems(3))

	runner := runScript(t, c, `{"steps": [
		{"action": "expect", "page": 0},
		{"action": "tap", "page": 0}
	]}`)

	f := runner.Failures()
	if len(f) != 2 {
		t.Fatalf("failures = %v, want 2", f)
	}
	if !strings.Contains(f[0], "current page = 2, want 0") {
		t.Errorf("failure[0] = %q", f[0])
	}
	if !strings.Contains(f[1], "not visible") {
		t.Errorf("failure[1] = %q", f[1])
	}
}

func TestGestureRunnerWaitsForInjections(t *testing.T) {
	c, _ := newTestControl(t)
	runner, err := LoadGestureScript([]byte(`{"steps": [{"action": "click", "x": 150, "y": 29}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetGestureRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(c)
	if len(c.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(c.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	c.processInput()
	c.processInput()

	runner.step(c)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}
