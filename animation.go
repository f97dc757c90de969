package pagedots

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultAnimationDuration = 0.35 // seconds

// defaultEasing overshoots slightly before settling, like a soft spring.
var defaultEasing ease.TweenFunc = ease.OutBack

// tween eases a single value toward a target. Retargeting while running
// restarts from the current value so motion never jumps.
type tween struct {
	tw    *gween.Tween
	to    float64
	value float64
}

// retarget starts easing toward to. A non-positive duration snaps.
func (t *tween) retarget(to float64, duration float32, fn ease.TweenFunc) {
	if to == t.to && (t.tw != nil || t.value == to) {
		return
	}
	t.to = to
	if duration <= 0 || fn == nil {
		t.tw = nil
		t.value = to
		return
	}
	t.tw = gween.New(float32(t.value), float32(to), duration, fn)
}

// update advances by dt seconds and reports whether the tween is at rest.
func (t *tween) update(dt float32) bool {
	if t.tw == nil {
		return true
	}
	v, finished := t.tw.Update(dt)
	t.value = float64(v)
	if finished {
		t.value = t.to
		t.tw = nil
	}
	return finished
}

// dotAnimator owns the displayed (animated) state of a control: one diameter
// per item, the overall row scale, and the row opacity.
type dotAnimator struct {
	diameters []tween
	scale     tween
	alpha     tween
}

func newDotAnimator() *dotAnimator {
	a := &dotAnimator{}
	a.scale.to, a.scale.value = 1, 1
	return a
}

// resize grows or shrinks the diameter set to n items. New dots start at zero
// and grow in.
func (a *dotAnimator) resize(n int) {
	if n <= len(a.diameters) {
		clear(a.diameters[n:])
		a.diameters = a.diameters[:n]
		return
	}
	a.diameters = append(a.diameters, make([]tween, n-len(a.diameters))...)
}

// update advances every tween and reports whether all are at rest.
func (a *dotAnimator) update(dt float32) bool {
	idle := a.scale.update(dt)
	idle = a.alpha.update(dt) && idle
	for i := range a.diameters {
		idle = a.diameters[i].update(dt) && idle
	}
	return idle
}
