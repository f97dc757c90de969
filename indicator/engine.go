package indicator

import "math"

// Engine maps drag offsets and taps to page changes and computes the
// diameter of every dot. It reads and writes the current page through the
// host's [Pager]; the drag itself lives in a [DragSession].
type Engine struct {
	pager   Pager
	cfg     SizingConfig
	session *DragSession

	// startingPage anchors the current drag. It is re-snapshotted from the
	// pager when a drag begins and reset to the current page when one ends.
	startingPage int
	panning      bool
}

// NewEngine returns an engine with its own drag session.
func NewEngine(pager Pager, cfg SizingConfig) *Engine {
	return NewEngineWithSession(pager, cfg, &DragSession{})
}

// NewEngineWithSession returns an engine driving an existing session. If the
// session is mid-drag, the engine resumes that drag. Engines that share a
// session must never drag concurrently; their offsets would corrupt each
// other.
func NewEngineWithSession(pager Pager, cfg SizingConfig, session *DragSession) *Engine {
	e := &Engine{
		pager:        pager,
		cfg:          cfg,
		session:      session,
		startingPage: pager.CurrentPage(),
		panning:      session.Busy(),
	}
	if session.Busy() && cfg.MaxDiameter > 0 {
		// The lower bound was set to startingPage * -MaxDiameter.
		minimum, _ := session.Bounds()
		e.startingPage = int(math.Round(-minimum / cfg.MaxDiameter))
	}
	return e
}

// Config returns the sizing configuration.
func (e *Engine) Config() SizingConfig { return e.cfg }

// SetConfig replaces the sizing configuration. Bounds of a drag already in
// progress are not recomputed.
func (e *Engine) SetConfig(cfg SizingConfig) { e.cfg = cfg }

// Session returns the drag session the engine drives.
func (e *Engine) Session() *DragSession { return e.session }

// Pager returns the host paging model.
func (e *Engine) Pager() Pager { return e.pager }

// StartingPage returns the page the current drag is anchored to.
func (e *Engine) StartingPage() int { return e.startingPage }

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool { return e.panning }

// Magnifying reports whether the renderer should apply the drag scale
// effect. It is true for the whole lifetime of a drag.
func (e *Engine) Magnifying() bool { return e.panning }

// Scale returns the overall row scale: the magnification value while
// dragging, 1 otherwise.
func (e *Engine) Scale() float64 {
	if e.panning {
		return e.cfg.Magnification.Magnification()
	}
	return 1
}

// Interactive reports whether the control should be shown and accept input.
// A single page (or none) has nothing to indicate.
func (e *Engine) Interactive() bool {
	return len(e.pager.Items()) > 1
}

// Drag handles one pointer move of a horizontal drag that went down at
// startX and is now at currentX, and returns the resulting current page.
// The first call of a drag anchors it; later calls only use currentX.
func (e *Engine) Drag(startX, currentX float64) int {
	count := len(e.pager.Items())
	if count == 0 {
		return e.pager.CurrentPage()
	}
	e.panning = true

	if !e.session.Busy() {
		e.startingPage = e.pager.CurrentPage()
		minimum := float64(e.startingPage) * -e.cfg.MaxDiameter
		maximum := float64(count-e.startingPage-1) * e.cfg.MaxDiameter
		e.session.Begin(startX, minimum, maximum)
	}

	e.session.Update(currentX)

	touchOffset := e.session.Value() / e.cfg.MaxDiameter

	// Truncate rather than round: the page only changes once a full dot's
	// width has been covered.
	pageOffset := int(max(min(touchOffset, float64(count-e.startingPage-1)), -float64(e.startingPage)))
	updated := min(max(0, e.startingPage+pageOffset), count-1)

	e.pager.SetCurrentPage(updated)
	return updated
}

// EndDrag finishes the drag, leaving the current page where it was scrubbed
// to. Calling it when no drag is active is harmless.
func (e *Engine) EndDrag() {
	e.session.End()
	e.panning = false
	e.startingPage = e.pager.CurrentPage()
}

// Tap jumps straight to pageIndex.
func (e *Engine) Tap(pageIndex int) {
	e.startingPage = pageIndex
	e.pager.SetCurrentPage(pageIndex)
}

// VisibleRange returns the inclusive range of page indices that are drawn.
// Without a MaxItems cap, or with fewer items than the cap, every page is
// visible. The window is centred on the current page where possible.
func (e *Engine) VisibleRange() (first, last int) {
	count := len(e.pager.Items())
	maxItems := e.cfg.MaxItems
	if maxItems <= 0 || count <= maxItems {
		return 0, count - 1
	}
	first = max(min(e.pager.CurrentPage()-maxItems/2, count-maxItems), 0)
	return first, first + maxItems - 1
}

// Diameter returns the diameter of item's dot. Zero or less means the dot is
// not drawn.
func (e *Engine) Diameter(item PageItem) float64 {
	return e.DiameterAt(item.PageIndex())
}

// DiameterAt returns the diameter of the dot for pageIndex.
func (e *Engine) DiameterAt(pageIndex int) float64 {
	first, last := e.VisibleRange()
	if pageIndex < first || pageIndex > last {
		return 0
	}

	maxD := e.cfg.MaxDiameter
	tailOff := e.cfg.TailOff.TailOff()

	var d float64
	if e.panning {
		touchOffset := e.session.Value() / maxD
		itemOffset := float64(pageIndex - e.startingPage)
		difference := math.Abs(touchOffset - itemOffset)
		d = maxD - difference*tailOff*e.cfg.Magnification.Magnification()
	} else {
		itemOffset := math.Abs(float64(pageIndex - e.pager.CurrentPage()))
		d = maxD - itemOffset*tailOff
	}

	return max(d, e.cfg.MinDiameter)
}

// AppendDiameters appends the diameter of every item, in item order, to dst.
func (e *Engine) AppendDiameters(dst []float64) []float64 {
	for _, it := range e.pager.Items() {
		dst = append(dst, e.Diameter(it))
	}
	return dst
}
