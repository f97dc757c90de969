package indicator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a sizing configuration plus an optional item sequence, as read
// from YAML by [LoadConfig].
type Config struct {
	Sizing SizingConfig
	Items  []PageItem
}

type configFile struct {
	SizingConfig `yaml:",inline"`

	Pages int        `yaml:"pages"`
	Items []itemFile `yaml:"items"`
}

type itemFile struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
}

// LoadConfig parses a YAML document of the form:
//
//	minDiameter: 4
//	maxDiameter: 22
//	maxItems: 7
//	tailOff: low         # max, medium, low, none, or a number
//	magnification: 1.8
//	pages: 12            # default-colored items, ignored if items is set
//	items:
//	  - background: "#ff8800"
//	    border: "#222"
//
// Absent fields keep the values from [DefaultSizingConfig].
func LoadConfig(data []byte) (Config, error) {
	raw := configFile{SizingConfig: DefaultSizingConfig()}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if raw.Pages < 0 {
		return Config{}, fmt.Errorf("parse config: pages must not be negative, got %d", raw.Pages)
	}

	cfg := Config{Sizing: raw.SizingConfig}
	if len(raw.Items) == 0 {
		cfg.Items = NewItems(raw.Pages)
		return cfg, nil
	}

	cfg.Items = make([]PageItem, len(raw.Items))
	for i, f := range raw.Items {
		it := Item{Index: i}
		if f.Background != "" {
			c, err := ParseColor(f.Background)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: item %d background: %w", i, err)
			}
			it.Background = &c
		}
		if f.Border != "" {
			c, err := ParseColor(f.Border)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: item %d border: %w", i, err)
			}
			it.Border = &c
		}
		cfg.Items[i] = it
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// MarshalSizing renders a sizing configuration as YAML.
func MarshalSizing(cfg SizingConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}
