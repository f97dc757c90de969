// Package pagedots is an interactive paging indicator for [Ebitengine]: a row
// of dots, one per page, that the player can tap to jump to a page or drag
// across to scrub through pages. While dragging, dots near the pointer grow
// and the whole row is magnified; sizes spring to their targets via [gween].
//
// The page and sizing maths live in the renderer-independent
// [github.com/phanxgames/pagedots/indicator] package. This package adds
// pointer and touch handling, layout, animation, and drawing.
//
// # Quick start
//
//	state := indicator.NewState(indicator.NewItems(8), 0)
//	ctrl := pagedots.NewControl(state, indicator.DefaultSizingConfig().
//		WithMaxItems(5).
//		WithSizeTailOff(indicator.CurveLow))
//	ctrl.Bounds = pagedots.Rect{X: 0, Y: 400, Width: 640, Height: 60}
//	ctrl.OnPageChange = func(page int) { showPage(page) }
//
// Call [Control.Update] from your game's Update and [Control.Draw] from its
// Draw, or let [Run] open a window for you:
//
//	pagedots.Run(ctrl, pagedots.RunConfig{Title: "Pages", Width: 640, Height: 480})
//
// # Gestures
//
// A press that moves more than [Control.DragDeadZone] pixels becomes a drag.
// Every following move scrubs pages: one page per [indicator.SizingConfig]
// MaxDiameter of horizontal travel, clamped at the first and last page. A
// press and release over the same dot without dragging taps that dot.
// Controls with a single page are invisible and ignore input.
//
// # Automated testing
//
// Pointer events can be injected with [Control.InjectClick],
// [Control.InjectDrag] and friends, and whole interactions can be scripted in
// JSON with [LoadGestureScript].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pagedots
