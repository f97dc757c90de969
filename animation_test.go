package pagedots

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenReachesTarget(t *testing.T) {
	var tw tween
	tw.retarget(10, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	if tw.update(0.5) {
		t.Fatal("tween finished early")
	}
	if math.Abs(tw.value-5) > 0.01 {
		t.Errorf("value at half = %f, want ~5", tw.value)
	}
	if !tw.update(0.5) {
		t.Fatal("expected finished after full duration")
	}
	if tw.value != 10 {
		t.Errorf("value = %f, want 10", tw.value)
	}
}

func TestTweenZeroDurationSnaps(t *testing.T) {
	var tw tween
	tw.retarget(7, 0, ease.Linear)
	if tw.value != 7 || tw.tw != nil {
		t.Errorf("value = %f, running = %v; want snapped to 7", tw.value, tw.tw != nil)
	}
}

func TestTweenSameTargetDoesNotRestart(t *testing.T) {
	var tw tween
	tw.retarget(10, 1.0, ease.Linear)
	tw.update(0.5)
	running := tw.tw

	tw.retarget(10, 1.0, ease.Linear)
	if tw.tw != running {
		t.Error("retargeting to the same value restarted the tween")
	}
}

func TestTweenRetargetStartsFromCurrent(t *testing.T) {
	var tw tween
	tw.retarget(10, 1.0, ease.Linear)
	tw.update(0.5) // ~5

	tw.retarget(0, 1.0, ease.Linear)
	tw.update(0.5)
	if math.Abs(tw.value-2.5) > 0.01 {
		t.Errorf("value = %f, want ~2.5", tw.value)
	}
}

func TestDotAnimatorResize(t *testing.T) {
	a := newDotAnimator()
	a.resize(3)
	a.diameters[2].retarget(9, 0, nil)
	a.resize(5)
	if len(a.diameters) != 5 || a.diameters[2].value != 9 {
		t.Errorf("grow lost state: %+v", a.diameters)
	}
	a.resize(2)
	if len(a.diameters) != 2 {
		t.Errorf("len = %d, want 2", len(a.diameters))
	}
	if a.scale.value != 1 {
		t.Errorf("initial scale = %f, want 1", a.scale.value)
	}
}

func TestDotAnimatorUpdateReportsIdle(t *testing.T) {
	a := newDotAnimator()
	a.resize(2)
	a.diameters[0].retarget(20, 0.2, ease.Linear)
	if a.update(0.1) {
		t.Error("animator idle while a tween is running")
	}
	if !a.update(0.1) {
		t.Error("animator should be idle once all tweens finish")
	}
}
