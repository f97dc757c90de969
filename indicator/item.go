package indicator

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Default item colors: a light system gray fill with a near-black outline.
var (
	DefaultBackgroundColor = Color{R: 0xE5 / 255.0, G: 0xE5 / 255.0, B: 0xEA / 255.0, A: 1}
	DefaultBorderColor     = Color{A: 1}
)

// ParseColor parses "#rgb" or "#rrggbb" into an opaque Color.
func ParseColor(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = "#" + string([]byte{hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("parse color: %q is not #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color: %w", err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Blend mixes c toward other by t in [0, 1], interpolating in Lab space so
// mid-points stay perceptually even. Alpha is interpolated linearly.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*t}
}

// ToRGBA converts to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return max(min(v, 1), 0)
}

// PageItem is one dot. PageIndex must equal the item's position in the
// sequence returned by [Pager.Items]. Colors are passed through to the
// renderer untouched.
type PageItem interface {
	PageIndex() int
	BackgroundColor() Color
	BorderColor() Color
}

// Pager is the host's paging model: the ordered items and the current page.
// SetCurrentPage is the only write the engine performs.
type Pager interface {
	Items() []PageItem
	CurrentPage() int
	SetCurrentPage(page int)
}

// Item is a ready-made PageItem. Nil colors fall back to the defaults.
type Item struct {
	Index      int
	Background *Color
	Border     *Color
}

// PageIndex implements PageItem.
func (it Item) PageIndex() int { return it.Index }

// BackgroundColor implements PageItem.
func (it Item) BackgroundColor() Color {
	if it.Background == nil {
		return DefaultBackgroundColor
	}
	return *it.Background
}

// BorderColor implements PageItem.
func (it Item) BorderColor() Color {
	if it.Border == nil {
		return DefaultBorderColor
	}
	return *it.Border
}

// NewItems returns n default-colored items indexed 0..n-1.
func NewItems(n int) []PageItem {
	items := make([]PageItem, n)
	for i := range items {
		items[i] = Item{Index: i}
	}
	return items
}

// State is a minimal Pager for hosts that do not keep their own model.
type State struct {
	items   []PageItem
	current int
}

// NewState returns a State over items with the given current page.
func NewState(items []PageItem, current int) *State {
	return &State{items: items, current: current}
}

// Items implements Pager.
func (s *State) Items() []PageItem { return s.items }

// CurrentPage implements Pager.
func (s *State) CurrentPage() int { return s.current }

// SetCurrentPage implements Pager.
func (s *State) SetCurrentPage(page int) { s.current = page }

// SetItems replaces the item sequence, clamping the current page into range.
func (s *State) SetItems(items []PageItem) {
	s.items = items
	if len(items) == 0 {
		s.current = 0
		return
	}
	s.current = max(min(s.current, len(items)-1), 0)
}
