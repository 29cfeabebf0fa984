package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks values the chart and camera cannot work with. Empty
// series are allowed.
func (c *Config) Validate() error {
	if c.Variant != "dual-axis" && c.Variant != "showcase" {
		return invalid("variant %q", c.Variant)
	}
	if c.FPS <= 0 {
		return invalid("fps %d must be positive", c.FPS)
	}
	if c.Step <= 0 || math.IsInf(c.Step, 0) || math.IsNaN(c.Step) {
		return invalid("step %v must be positive", c.Step)
	}
	if c.Stars < 0 {
		return invalid("stars %d must not be negative", c.Stars)
	}
	for name, vals := range map[string][]float64{"x": c.Data.X, "z": c.Data.Z, "row": c.Data.Row} {
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return invalid("data.%s[%d] = %v", name, i, v)
			}
		}
	}
	if c.Layout.BarWidth <= 0 {
		return invalid("layout.bar_width %v must be positive", c.Layout.BarWidth)
	}
	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return invalid("camera.fov %v outside (0, 180)", cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return invalid("camera near %v / far %v", cam.Near, cam.Far)
	}
	if cam.Position == cam.Target {
		return invalid("camera position equals target")
	}
	// The camera's up axis is +Y; a view along it has no defined right.
	if cam.Position[0] == cam.Target[0] && cam.Position[2] == cam.Target[2] {
		return invalid("camera looks straight along the up axis")
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return invalid("viewport %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}
