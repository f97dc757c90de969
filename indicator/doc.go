// Package indicator holds the renderer-independent core of a paging
// indicator: a row of dots, one per page, that can be tapped to jump to a
// page or dragged across to scrub through pages.
//
// Two types do the work. [DragSession] tracks a single in-progress drag as a
// clamped, elastic scalar offset. [Engine] turns that offset into a discrete
// page index (written back to the host's [Pager]) and into a continuous
// diameter for every dot, shaped by a [SizingConfig].
//
//	state := indicator.NewState(indicator.NewItems(5), 0)
//	eng := indicator.NewEngine(state, indicator.DefaultSizingConfig().
//		WithSizeTailOff(indicator.CurveLow))
//
//	eng.Drag(100, 130) // pointer moved 30 units right of where it went down
//	eng.EndDrag()
//	_ = state.CurrentPage() // 1
//
// Nothing in this package validates geometry. Out-of-range pages and offsets
// are clamped; a degenerate configuration simply produces zero or negative
// diameters, which renderers treat as "do not draw".
//
// All methods must be called from a single goroutine, in event order.
package indicator
