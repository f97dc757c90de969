package indicator

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{R: 1, A: 1}, false},
		{"#0f0", Color{G: 1, A: 1}, false},
		{"#000000", Color{A: 1}, false},
		{"red", Color{}, true},
		{"#12345", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	a := Color{R: 1, G: 0.5, B: 0, A: 1}
	b := Color{R: 0, G: 0, B: 1, A: 0}

	start := a.Blend(b, 0)
	end := a.Blend(b, 1)
	for _, pair := range [][2]float64{
		{start.R, a.R}, {start.G, a.G}, {start.B, a.B}, {start.A, a.A},
		{end.R, b.R}, {end.G, b.G}, {end.B, b.B}, {end.A, b.A},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-6 {
			t.Errorf("blend endpoint component = %f, want %f", pair[0], pair[1])
		}
	}
	if mid := a.Blend(b, 0.5); math.Abs(mid.A-0.5) > 1e-9 {
		t.Errorf("mid alpha = %f, want 0.5", mid.A)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 1, B: 1, A: 0.5}.ToRGBA()
	if got.A != 127 || got.R != 127 {
		t.Errorf("ToRGBA = %+v, want premultiplied half white", got)
	}
}

func TestItemDefaults(t *testing.T) {
	it := Item{Index: 3}
	if it.PageIndex() != 3 {
		t.Errorf("PageIndex = %d", it.PageIndex())
	}
	if it.BackgroundColor() != DefaultBackgroundColor || it.BorderColor() != DefaultBorderColor {
		t.Error("nil colors should fall back to defaults")
	}
	red := Color{R: 1, A: 1}
	it.Background = &red
	if it.BackgroundColor() != red {
		t.Errorf("BackgroundColor = %+v, want red", it.BackgroundColor())
	}
}

func TestNewItemsIndexed(t *testing.T) {
	items := NewItems(4)
	for i, it := range items {
		if it.PageIndex() != i {
			t.Errorf("items[%d].PageIndex = %d", i, it.PageIndex())
		}
	}
}

func TestStateSetItemsClampsPage(t *testing.T) {
	s := NewState(NewItems(8), 6)
	s.SetItems(NewItems(3))
	if s.CurrentPage() != 2 {
		t.Errorf("CurrentPage = %d, want 2", s.CurrentPage())
	}
	s.SetItems(nil)
	if s.CurrentPage() != 0 {
		t.Errorf("CurrentPage = %d, want 0", s.CurrentPage())
	}
}
