package indicator

// DragSession tracks the elastic, clamped horizontal offset of one drag
// gesture.
//
// Once the raw offset passes a bound, the anchor is dragged along with the
// pointer so the reported value stays pinned at the bound. Reversing direction
// therefore moves the value on the very next update instead of waiting for
// the pointer to travel back to where the clamp started.
//
// A session outlives any per-frame object that reads it; hand the same
// session to a recreated [Engine] with [NewEngineWithSession] to keep a drag
// alive across the recreation. Only one drag may use a session at a time.
type DragSession struct {
	busy    bool
	value   float64
	minimum float64
	maximum float64
	startX  float64
}

// Begin starts a drag anchored at startX whose value is clamped to
// [min, max]. Calling Begin on a busy session starts a fresh drag.
func (s *DragSession) Begin(startX, min, max float64) {
	s.startX = startX
	s.minimum = min
	s.maximum = max
	s.busy = true
}

// Update moves the drag to currentX. Begin must have been called first.
func (s *DragSession) Update(currentX float64) {
	offset := currentX - s.startX

	s.startX += max(offset-s.maximum, 0)
	s.startX -= max(s.minimum-offset, 0)

	s.value = max(min(offset, s.maximum), s.minimum)
}

// End finishes the drag and zeroes the value. Safe to call repeatedly.
func (s *DragSession) End() {
	s.busy = false
	s.value = 0
}

// Busy reports whether a drag is in progress.
func (s *DragSession) Busy() bool { return s.busy }

// Value returns the current clamped offset from the anchor.
func (s *DragSession) Value() float64 { return s.value }

// Bounds returns the clamp bounds of the current (or last) drag.
func (s *DragSession) Bounds() (min, max float64) { return s.minimum, s.maximum }

// Anchor returns the current, possibly re-anchored, start coordinate.
func (s *DragSession) Anchor() float64 { return s.startX }
