package pagedots

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/pagedots/indicator"
	"github.com/tanema/gween/ease"
)

const (
	defaultDotSpacing   = 8.0
	defaultBorderWidth  = 0.5
	defaultDragDeadZone = 1.0 // pixels

	pressedBlend = 0.35
)

// dotLayout is the on-screen placement of one visible dot, after the row
// scale has been applied.
type dotLayout struct {
	page    int
	item    indicator.PageItem
	centerX float64
	centerY float64
	radius  float64
}

// Control is the paging indicator widget. It owns an [indicator.Engine] and
// the drag session behind it, so rebuilding other UI around it never loses a
// drag in progress.
//
// A Control is not safe for concurrent use; drive it from the game loop.
type Control struct {
	// Bounds is the area the control occupies. The dot row is centred
	// horizontally and sits on the bottom edge. Drags may start anywhere
	// inside Bounds; taps must land on a dot.
	Bounds Rect

	// Spacing is the gap between adjacent dots.
	Spacing float64
	// BorderWidth is the stroke width of each dot's outline.
	BorderWidth float64
	// DragDeadZone is how far a press must travel before it becomes a drag.
	DragDeadZone float64

	// AnimationDuration is how long size changes take to settle, in seconds.
	// Zero disables animation.
	AnimationDuration float32
	// Easing shapes size animations.
	Easing ease.TweenFunc

	// OnPageChange fires whenever a gesture changes the current page.
	OnPageChange func(page int)
	// OnGesture fires for every tap and drag event the control handles.
	OnGesture func(GestureContext)

	engine *indicator.Engine
	anim   *dotAnimator
	input  inputReader
	debug  bool

	// Pointer state
	pointers     [maxPointers]pointerState
	captured     int // pointer driving the current gesture, or -1
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *GestureRunner

	layoutBuf []dotLayout
}

// NewControl returns a control over pager, sized by cfg.
func NewControl(pager indicator.Pager, cfg indicator.SizingConfig) *Control {
	return newControl(indicator.NewEngine(pager, cfg))
}

// NewControlWithSession is like NewControl but drives an existing drag
// session, so a control rebuilt mid-drag carries on where the old one was.
func NewControlWithSession(pager indicator.Pager, cfg indicator.SizingConfig, session *indicator.DragSession) *Control {
	return newControl(indicator.NewEngineWithSession(pager, cfg, session))
}

func newControl(engine *indicator.Engine) *Control {
	c := &Control{
		Spacing:           defaultDotSpacing,
		BorderWidth:       defaultBorderWidth,
		DragDeadZone:      defaultDragDeadZone,
		AnimationDuration: defaultAnimationDuration,
		Easing:            defaultEasing,
		engine:            engine,
		anim:              newDotAnimator(),
		input:             ebitenInput{},
		captured:          -1,
	}
	c.retarget(0)
	return c
}

// Engine returns the page/sizing engine behind the control.
func (c *Control) Engine() *indicator.Engine { return c.engine }

// Config returns the current sizing configuration.
func (c *Control) Config() indicator.SizingConfig { return c.engine.Config() }

// SetConfig replaces the sizing configuration. Dot sizes animate to the new
// targets.
func (c *Control) SetConfig(cfg indicator.SizingConfig) {
	c.engine.SetConfig(cfg)
	c.retarget(c.AnimationDuration)
}

// CurrentPage returns the host's current page.
func (c *Control) CurrentPage() int { return c.engine.Pager().CurrentPage() }

// SetDebugMode enables or disables gesture logging to stderr.
func (c *Control) SetDebugMode(enabled bool) { c.debug = enabled }

// Update processes input and advances animations by one tick at the
// current TPS.
func (c *Control) Update() {
	c.UpdateWithDelta(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateWithDelta is Update with an explicit time step in seconds.
func (c *Control) UpdateWithDelta(dt float32) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.retarget(c.AnimationDuration)
	c.anim.update(dt)
}

// retarget points every animated value at what the engine currently wants.
func (c *Control) retarget(duration float32) {
	items := c.engine.Pager().Items()
	c.anim.resize(len(items))
	for i, it := range items {
		c.anim.diameters[i].retarget(c.engine.Diameter(it), duration, c.Easing)
	}
	c.anim.scale.retarget(c.engine.Scale(), duration, c.Easing)

	alpha := 0.0
	if c.engine.Interactive() {
		alpha = 1
	}
	c.anim.alpha.retarget(alpha, duration, c.Easing)
}

// Diameters appends the displayed (animated) diameter of every item to dst.
func (c *Control) Diameters(dst []float64) []float64 {
	for i := range c.anim.diameters {
		dst = append(dst, c.anim.diameters[i].value)
	}
	return dst
}

// Scale returns the displayed (animated) row scale.
func (c *Control) Scale() float64 { return c.anim.scale.value }

// Opacity returns the displayed (animated) row opacity.
func (c *Control) Opacity() float64 { return c.anim.alpha.value }

// layout places every visible dot. Hidden dots take no space.
func (c *Control) layout(buf []dotLayout) []dotLayout {
	buf = buf[:0]
	items := c.engine.Pager().Items()

	width := 0.0
	for i, it := range items {
		if i >= len(c.anim.diameters) {
			break
		}
		d := c.anim.diameters[i].value
		if d <= 0 {
			continue
		}
		if len(buf) > 0 {
			width += c.Spacing
		}
		buf = append(buf, dotLayout{page: it.PageIndex(), item: it, centerX: width + d/2, radius: d / 2})
		width += d
	}

	rowX := c.Bounds.X + (c.Bounds.Width-width)/2
	midX := c.Bounds.X + c.Bounds.Width/2
	midY := c.Bounds.Y + c.Bounds.Height - c.engine.Config().MaxDiameter/2
	scale := c.anim.scale.value
	for i := range buf {
		l := &buf[i]
		x := rowX + l.centerX
		l.centerX = midX + (x-midX)*scale
		l.centerY = midY
		l.radius *= scale
	}
	return buf
}

// dotAt returns the page of the dot under (x, y), or -1.
func (c *Control) dotAt(x, y float64) int {
	c.layoutBuf = c.layout(c.layoutBuf)
	for _, l := range c.layoutBuf {
		if (hitCircle{l.centerX, l.centerY, l.radius}).contains(x, y) {
			return l.page
		}
	}
	return -1
}

// DotCenter returns the on-screen centre of the dot for page, and false if
// that dot is not currently drawn.
func (c *Control) DotCenter(page int) (x, y float64, ok bool) {
	c.layoutBuf = c.layout(c.layoutBuf)
	for _, l := range c.layoutBuf {
		if l.page == page {
			return l.centerX, l.centerY, true
		}
	}
	return 0, 0, false
}

// PressedPage returns the page of the dot currently held down without
// dragging, or -1.
func (c *Control) PressedPage() int {
	if c.captured < 0 {
		return -1
	}
	ps := &c.pointers[c.captured]
	if ps.dragging {
		return -1
	}
	return ps.hitPage
}

// Draw renders the dot row onto screen.
func (c *Control) Draw(screen *ebiten.Image) {
	alpha := c.anim.alpha.value
	if alpha <= 0 {
		return
	}
	pressed := c.PressedPage()
	c.layoutBuf = c.layout(c.layoutBuf)
	for _, l := range c.layoutBuf {
		bg := l.item.BackgroundColor()
		border := l.item.BorderColor()
		if l.page == pressed {
			bg = bg.Blend(border, pressedBlend)
		}
		bg.A *= alpha
		border.A *= alpha

		cx, cy, r := float32(l.centerX), float32(l.centerY), float32(l.radius)
		vector.DrawFilledCircle(screen, cx, cy, r, bg.ToRGBA(), true)
		if c.BorderWidth > 0 {
			vector.StrokeCircle(screen, cx, cy, r, float32(c.BorderWidth), border.ToRGBA(), true)
		}
	}
}
