package indicator

import "testing"

func TestDragSessionBeginMarksBusy(t *testing.T) {
	var s DragSession
	if s.Busy() {
		t.Fatal("zero session should not be busy")
	}
	s.Begin(10, -50, 50)
	if !s.Busy() {
		t.Error("Begin should mark the session busy")
	}
	if s.Value() != 0 {
		t.Errorf("Value = %f before any update, want 0", s.Value())
	}
	if lo, hi := s.Bounds(); lo != -50 || hi != 50 {
		t.Errorf("Bounds = (%f, %f), want (-50, 50)", lo, hi)
	}
}

func TestDragSessionUpdateWithinBounds(t *testing.T) {
	var s DragSession
	s.Begin(100, -50, 50)

	tests := []struct {
		x    float64
		want float64
	}{
		{120, 20},
		{150, 50},
		{70, -30},
		{50, -50},
		{100, 0},
	}
	for _, tt := range tests {
		s.Update(tt.x)
		if s.Value() != tt.want {
			t.Errorf("Update(%v): Value = %f, want %f", tt.x, s.Value(), tt.want)
		}
		if s.Anchor() != 100 {
			t.Errorf("Update(%v): anchor moved to %f inside bounds", tt.x, s.Anchor())
		}
	}
}

func TestDragSessionElasticReanchorBelowMinimum(t *testing.T) {
	var s DragSession
	s.Begin(0, -50, 50)

	s.Update(-80)
	if s.Value() != -50 {
		t.Errorf("Value = %f, want -50", s.Value())
	}
	if s.Anchor() != -30 {
		t.Errorf("anchor = %f, want -30", s.Anchor())
	}

	// Reversing by 10 takes effect immediately.
	s.Update(-70)
	if s.Value() != -40 {
		t.Errorf("Value after reversal = %f, want -40", s.Value())
	}
}

func TestDragSessionElasticReanchorAboveMaximum(t *testing.T) {
	var s DragSession
	s.Begin(0, -50, 50)

	s.Update(90)
	if s.Value() != 50 {
		t.Errorf("Value = %f, want 50", s.Value())
	}
	if s.Anchor() != 40 {
		t.Errorf("anchor = %f, want 40", s.Anchor())
	}

	// Pushing further keeps the value pinned.
	s.Update(200)
	if s.Value() != 50 {
		t.Errorf("Value = %f, want 50", s.Value())
	}

	s.Update(195)
	if s.Value() != 45 {
		t.Errorf("Value after reversal = %f, want 45", s.Value())
	}
}

func TestDragSessionEndIdempotent(t *testing.T) {
	var s DragSession
	s.Begin(0, -50, 50)
	s.Update(30)

	s.End()
	s.End()
	if s.Busy() {
		t.Error("session still busy after End")
	}
	if s.Value() != 0 {
		t.Errorf("Value = %f after End, want 0", s.Value())
	}
}

func TestDragSessionRebeginStartsFresh(t *testing.T) {
	var s DragSession
	s.Begin(0, -50, 50)
	s.Update(90)

	s.Begin(200, 0, 10)
	s.Update(205)
	if s.Value() != 5 {
		t.Errorf("Value = %f, want 5", s.Value())
	}
	if lo, hi := s.Bounds(); lo != 0 || hi != 10 {
		t.Errorf("Bounds = (%f, %f), want (0, 10)", lo, hi)
	}
}
