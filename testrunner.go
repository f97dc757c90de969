package pagedots

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	Page   int     `json:"page,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner sequences injected pointer events and page assertions across
// frames for automated testing. Attach to a Control via SetGestureRunner.
//
// Supported actions:
//
//	{"action": "tap", "page": 3}                   // click the centre of a dot
//	{"action": "click", "x": 100, "y": 20}
//	{"action": "drag", "fromX": 100, "fromY": 20, "toX": 160, "toY": 20, "frames": 8}
//	{"action": "wait", "frames": 10}
//	{"action": "expect", "page": 2}                // record a failure on mismatch
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

var knownActions = map[string]bool{
	"tap": true, "click": true, "drag": true, "wait": true, "expect": true,
}

// LoadGestureScript parses a JSON gesture script and returns a runner ready
// to be attached with SetGestureRunner.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner to the control. The runner's step method
// is called from Update before input is processed each frame.
func (c *Control) SetGestureRunner(runner *GestureRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Failures returns a description of every failed expectation so far.
func (r *GestureRunner) Failures() []string {
	return r.failures
}

// step advances the runner by one frame. Called from Control.Update.
func (r *GestureRunner) step(c *Control) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		x, y, ok := c.DotCenter(st.Page)
		if !ok {
			r.failf("step %d: dot for page %d is not visible", r.cursor-1, st.Page)
			break
		}
		c.InjectClick(x, y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		if got := c.CurrentPage(); got != st.Page {
			r.failf("step %d: current page = %d, want %d", r.cursor-1, got, st.Page)
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

func (r *GestureRunner) failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.failures = append(r.failures, msg)
}
