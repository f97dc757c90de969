package pagedots

import "github.com/phanxgames/pagedots/indicator"

// Color is re-exported from the indicator package so hosts only need one
// import for the common case.
type Color = indicator.Color

// ColorTransparent draws nothing.
var ColorTransparent = Color{}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// hitCircle is a circular hit area.
type hitCircle struct {
	centerX, centerY, radius float64
}

// contains reports whether (x, y) lies inside or on the circle.
func (c hitCircle) contains(x, y float64) bool {
	dx := x - c.centerX
	dy := y - c.centerY
	return dx*dx+dy*dy <= c.radius*c.radius
}

// EventType identifies a gesture event reported to OnGesture.
type EventType uint8

const (
	EventTap       EventType = iota // a press and release over the same dot
	EventDragStart                  // movement exceeded the drag dead zone
	EventDrag                       // fires on every move while dragging
	EventDragEnd                    // the pointer was released after dragging
)

// String returns the event name used in debug output.
func (e EventType) String() string {
	switch e {
	case EventTap:
		return "tap"
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// GestureContext carries gesture event data.
type GestureContext struct {
	Type      EventType
	PointerID int
	// X is the pointer position; StartX is where the pointer went down.
	X, Y   float64
	StartX float64
	// Page is the current page after the event was handled.
	Page int
}
