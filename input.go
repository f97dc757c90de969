package pagedots

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitPage  int // dot under the press, or -1
	dragging bool
}

// --- Input sources ---

// inputReader feeds real device input into the pointer state machine. It is
// only consulted on frames without injected events.
type inputReader interface {
	read(c *Control)
}

// ebitenInput reads the mouse and touch screen through Ebitengine.
type ebitenInput struct{}

func (ebitenInput) read(c *Control) {
	c.processMousePointer()
	c.processTouchPointers()
}

// noInput ignores devices; only injected events drive the control.
type noInput struct{}

func (noInput) read(*Control) {}

// --- Input processing ---

// processInput is called from Update to handle all pointer input.
func (c *Control) processInput() {
	if c.processInjectedInput() {
		return
	}
	c.input.read(c)
}

// processMousePointer handles mouse input (pointer 0). Only the left button
// drives the control.
func (c *Control) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	c.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (c *Control) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(c.prevTouchIDs[:0])
	c.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := c.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		c.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && !activeSlots[i] {
			ps := &c.pointers[i]
			if ps.down {
				c.processPointer(i, ps.lastX, ps.lastY, false)
			}
			c.touchUsed[i] = false
			c.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (c *Control) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && c.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !c.touchUsed[i] {
			c.touchUsed[i] = true
			c.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer. Only
// one pointer at a time may drive the control; it is captured on press
// inside Bounds and released when it lifts.
func (c *Control) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &c.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.hitPage = -1

		if c.captured < 0 && c.engine.Interactive() && c.Bounds.Contains(x, y) {
			c.captured = pointerID
			ps.hitPage = c.dotAt(x, y)
		}

	case !pressed && ps.down:
		if c.captured == pointerID {
			if ps.dragging {
				c.endDrag(pointerID, x, y, ps.startX)
			} else if ps.hitPage >= 0 && c.dotAt(x, y) == ps.hitPage {
				c.tap(pointerID, x, y, ps.hitPage)
			}
			c.captured = -1
		}
		ps.down = false
		ps.dragging = false
		ps.hitPage = -1

	case pressed && ps.down:
		if c.captured == pointerID && (x != ps.lastX || y != ps.lastY) {
			if !ps.dragging {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > c.DragDeadZone {
					ps.dragging = true
					c.fireGesture(EventDragStart, pointerID, x, y, ps.startX)
				}
			}
			if ps.dragging {
				c.drag(pointerID, x, y, ps.startX)
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// --- Gesture handling ---

func (c *Control) drag(pointerID int, x, y, startX float64) {
	before := c.CurrentPage()
	c.engine.Drag(startX, x)
	c.fireGesture(EventDrag, pointerID, x, y, startX)
	c.notifyPageChange(before)
}

func (c *Control) endDrag(pointerID int, x, y, startX float64) {
	c.engine.EndDrag()
	c.fireGesture(EventDragEnd, pointerID, x, y, startX)
}

func (c *Control) tap(pointerID int, x, y float64, page int) {
	before := c.CurrentPage()
	c.engine.Tap(page)
	c.fireGesture(EventTap, pointerID, x, y, x)
	c.notifyPageChange(before)
}

// CancelGesture abandons any press or drag in progress, keeping the page it
// reached. Use it when the control is hidden or loses focus mid-gesture.
func (c *Control) CancelGesture() {
	if c.captured >= 0 {
		ps := &c.pointers[c.captured]
		if ps.dragging {
			c.endDrag(c.captured, ps.lastX, ps.lastY, ps.startX)
		}
		ps.dragging = false
		ps.hitPage = -1
		c.captured = -1
	}
}

func (c *Control) notifyPageChange(before int) {
	after := c.CurrentPage()
	if after == before {
		return
	}
	c.debugf("page %d -> %d", before, after)
	if c.OnPageChange != nil {
		c.OnPageChange(after)
	}
}

func (c *Control) fireGesture(t EventType, pointerID int, x, y, startX float64) {
	ctx := GestureContext{
		Type:      t,
		PointerID: pointerID,
		X:         x,
		Y:         y,
		StartX:    startX,
		Page:      c.CurrentPage(),
	}
	if t != EventDrag {
		c.debugf("%s pointer=%d x=%.1f page=%d", t, pointerID, x, ctx.Page)
	}
	if c.OnGesture != nil {
		c.OnGesture(ctx)
	}
}
