package indicator

const (
	defaultMaxDiameter = 22
	defaultMinDiameter = 0
)

// SizingConfig controls dot diameters. Build one with [DefaultSizingConfig]
// and the With* setters; each setter returns a modified copy and leaves the
// receiver untouched, so a config can be shared and specialised freely.
type SizingConfig struct {
	// MinDiameter floors every computed diameter.
	MinDiameter float64 `yaml:"minDiameter"`
	// MaxDiameter is the diameter of the focused dot, and the drag distance
	// that scrubs one page.
	MaxDiameter float64 `yaml:"maxDiameter"`
	// MaxItems caps how many dots are visible at once. Zero means no cap.
	MaxItems int `yaml:"maxItems,omitempty"`

	TailOff       SizeTailOff   `yaml:"tailOff"`
	Magnification Magnification `yaml:"magnification"`
}

// DefaultSizingConfig returns a 0..22 diameter range, no item cap, and medium
// tail-off and magnification.
func DefaultSizingConfig() SizingConfig {
	return SizingConfig{
		MinDiameter:   defaultMinDiameter,
		MaxDiameter:   defaultMaxDiameter,
		TailOff:       CurveMedium,
		Magnification: CurveMedium,
	}
}

// WithMinDiameter returns a copy with the minimum diameter set.
func (c SizingConfig) WithMinDiameter(d float64) SizingConfig {
	c.MinDiameter = d
	return c
}

// WithMaxDiameter returns a copy with the maximum diameter set.
func (c SizingConfig) WithMaxDiameter(d float64) SizingConfig {
	c.MaxDiameter = d
	return c
}

// WithMaxItems returns a copy that shows at most n dots.
func (c SizingConfig) WithMaxItems(n int) SizingConfig {
	c.MaxItems = n
	return c
}

// WithSizeTailOff returns a copy with the given tail-off curve.
func (c SizingConfig) WithSizeTailOff(t SizeTailOff) SizingConfig {
	c.TailOff = t
	return c
}

// WithMagnification returns a copy with the given magnification curve.
func (c SizingConfig) WithMagnification(m Magnification) SizingConfig {
	c.Magnification = m
	return c
}
