package anim

import (
	"math"

	"github.com/san-kum/bars3d/internal/chart"
)

const DefaultStep = 0.05

// ScaleAt is the vertical scale of a bar of original height h with
// construction index i at time t. It stays within [0.5h, 1.5h] and has
// period 2π in t.
func ScaleAt(h, t float64, i int) float64 {
	return ((math.Sin(t+float64(i))+1)/2 + 0.5) * h
}

// Driver advances a fixed-step time accumulator. The step is per frame, not
// per second, so animation speed follows the frame rate.
type Driver struct {
	time, step float64
}

func NewDriver(step float64) *Driver {
	if step <= 0 {
		step = DefaultStep
	}
	return &Driver{step: step}
}

func (d *Driver) Time() float64 { return d.time }
func (d *Driver) Step() float64 { return d.step }
func (d *Driver) Reset()        { d.time = 0 }

// Advance moves time forward one step and rescales every bar, keeping its
// base on Y=0 and its label showing the rounded scale.
func (d *Driver) Advance(c *chart.Chart) {
	d.time += d.step
	d.Apply(c)
}

// Apply rescales every bar for the current time without advancing it.
func (d *Driver) Apply(c *chart.Chart) {
	for i, b := range c.Bars {
		b.SetScale(ScaleAt(b.Height, d.time, i))
		if l := c.Label(i); l != nil {
			l.SetValue(b.Scale())
		}
	}
}
