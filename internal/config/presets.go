package config

import "sort"

var Presets = map[string]*Config{
	"dual-axis": DefaultConfig(),
	"showcase":  showcase(),
	"calm":      calm(),
	"flat":      flat(),
}

// view holds the settings whose defaults depend on the variant.
type view struct {
	BarWidth float64
	Position [3]float64
	Target   [3]float64
}

var variantViews = map[string]view{
	"dual-axis": {BarWidth: 0.5, Position: [3]float64{0, 10, 20}},
	"showcase":  {BarWidth: 1, Position: [3]float64{0, 0, 15}},
}

// ApplyVariantDefaults swaps in the bar width and camera of c's variant
// wherever c still holds the defaults of another variant. Values set by
// hand are left alone.
func (c *Config) ApplyVariantDefaults() {
	want, ok := variantViews[c.Variant]
	if !ok {
		return
	}
	for name, other := range variantViews {
		if name == c.Variant {
			continue
		}
		if c.Layout.BarWidth == other.BarWidth {
			c.Layout.BarWidth = want.BarWidth
		}
		if c.Camera.Position == other.Position && c.Camera.Target == other.Target {
			c.Camera.Position, c.Camera.Target = want.Position, want.Target
		}
	}
}

func showcase() *Config {
	c := DefaultConfig()
	c.Variant = "showcase"
	c.ApplyVariantDefaults()
	return c
}

func calm() *Config {
	c := DefaultConfig()
	c.Step = 0.01
	c.FPS = 30
	return c
}

func flat() *Config {
	c := DefaultConfig()
	for i := range c.Data.X {
		c.Data.X[i] = 5
	}
	for i := range c.Data.Z {
		c.Data.Z[i] = 5
	}
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
