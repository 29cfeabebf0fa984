package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVariant = "dual-axis"
	DefaultFPS     = 60
	DefaultStep    = 0.05
	DefaultStars   = 200
	DefaultFOV     = 75.0
	DefaultNear    = 0.1
	DefaultFar     = 1000.0
	DefaultWidth   = 800.0
	DefaultHeight  = 600.0
	DefaultTheme   = "cyberpunk"
)

// Default data of the dual-axis chart.
var (
	DefaultX   = []float64{5, 7, 3, 9, 6, 4, 10, 5, 7, 9, 6, 8, 3, 2, 7}
	DefaultZ   = []float64{4, 8, 3, 6, 7, 5, 9, 6, 4, 8, 5, 7, 2, 3, 6}
	DefaultRow = []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
)

type Config struct {
	Variant  string         `yaml:"variant"`
	Seed     int64          `yaml:"seed"`
	FPS      int            `yaml:"fps"`
	Step     float64        `yaml:"step"`
	Stars    int            `yaml:"stars"`
	Theme    string         `yaml:"theme"`
	Data     DataConfig     `yaml:"data"`
	Layout   LayoutConfig   `yaml:"layout"`
	Camera   CameraConfig   `yaml:"camera"`
	Viewport ViewportConfig `yaml:"viewport"`
}

type DataConfig struct {
	X   []float64 `yaml:"x,flow"`
	Z   []float64 `yaml:"z,flow"`
	Row []float64 `yaml:"row,flow"`
}

type LayoutConfig struct {
	BarWidth   float64  `yaml:"bar_width"`
	BaseOffset float64  `yaml:"base_offset"`
	BarSpacing float64  `yaml:"bar_spacing"`
	FaceColors []string `yaml:"face_colors,flow"`
}

type CameraConfig struct {
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position,flow"`
	Target   [3]float64 `yaml:"target,flow"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant: DefaultVariant,
		Seed:    1,
		FPS:     DefaultFPS,
		Step:    DefaultStep,
		Stars:   DefaultStars,
		Theme:   DefaultTheme,
		Data: DataConfig{
			X:   clone(DefaultX),
			Z:   clone(DefaultZ),
			Row: clone(DefaultRow),
		},
		Layout: LayoutConfig{
			BarWidth:   0.5,
			BaseOffset: 0.2,
			BarSpacing: 0.5,
			FaceColors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"},
		},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Near:     DefaultNear,
			Far:      DefaultFar,
			Position: [3]float64{0, 10, 20},
		},
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the file at path onto cfg. Keys missing from the file
// keep their current values.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Data.X = clone(c.Data.X)
	out.Data.Z = clone(c.Data.Z)
	out.Data.Row = clone(c.Data.Row)
	out.Layout.FaceColors = append([]string(nil), c.Layout.FaceColors...)
	return &out
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
