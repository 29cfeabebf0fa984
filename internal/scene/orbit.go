package scene

import "math"

// Orbit rotates, zooms and pans a camera around its target. Input is
// accumulated and applied on Update so it takes effect once per frame.
type Orbit struct {
	camera                   *Camera
	MinDistance, MaxDistance float64
	theta, phi, zoom         float64
	pan                      Vec3
}

func NewOrbit(c *Camera) *Orbit {
	return &Orbit{camera: c, MinDistance: 1, MaxDistance: 500, zoom: 1}
}

// Rotate queues an azimuth (around Up) and polar angle change in radians.
func (o *Orbit) Rotate(azimuth, polar float64) {
	o.theta += azimuth
	o.phi += polar
}

// Zoom queues a distance factor; values below 1 move closer.
func (o *Orbit) Zoom(factor float64) {
	if factor > 0 {
		o.zoom *= factor
	}
}

// Pan queues a move of both camera and target in camera-relative units.
func (o *Orbit) Pan(dx, dy float64) {
	c := o.camera
	fwd := c.Target.Sub(c.Position).Normalize()
	right := fwd.Cross(c.Up).Normalize()
	up := right.Cross(fwd).Normalize()
	o.pan = o.pan.Add(right.Mul(dx)).Add(up.Mul(dy))
}

// Update applies queued input and reports whether the camera moved.
func (o *Orbit) Update() bool {
	if o.theta == 0 && o.phi == 0 && o.zoom == 1 && o.pan == (Vec3{}) {
		return false
	}
	c := o.camera
	c.Target = c.Target.Add(o.pan)
	off := c.Position.Add(o.pan).Sub(c.Target)

	r := off.Len()
	if r == 0 {
		off, r = Vec3{0, 0, o.MinDistance}, o.MinDistance
	}
	theta := math.Atan2(off.X(), off.Z())
	phi := math.Acos(clamp(off.Y()/r, -1, 1))

	theta += o.theta
	const eps = 1e-6
	phi = clamp(phi-o.phi, eps, math.Pi-eps)
	r = clamp(r*o.zoom, o.MinDistance, o.MaxDistance)

	sp := math.Sin(phi)
	off = Vec3{r * sp * math.Sin(theta), r * math.Cos(phi), r * sp * math.Cos(theta)}
	c.Position = c.Target.Add(off)

	o.theta, o.phi, o.zoom, o.pan = 0, 0, 1, Vec3{}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
