package anim

import (
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/scene"
)

// LabelLift is the gap between a bar's top face and its label anchor.
const LabelLift = 0.2

// Anchor is the top-centre of a bar mesh plus LabelLift.
func Anchor(m *scene.Mesh) scene.Vec3 {
	p := m.Position
	return scene.Vec3{p.X(), p.Y() + m.Scale.Y()/2 + LabelLift, p.Z()}
}

// Projector maps label anchors to viewport pixels. Labels that land
// behind the camera or outside the viewport are not hidden.
type Projector struct {
	camera   *scene.Camera
	viewport *scene.Viewport
}

func NewProjector(cam *scene.Camera, vp *scene.Viewport) *Projector {
	return &Projector{camera: cam, viewport: vp}
}

// Project returns the pixel position of a world point.
func (p *Projector) Project(pt scene.Vec3) (float64, float64) {
	return p.viewport.ToPixel(p.camera.Project(pt))
}

// Update writes the screen position of every label.
func (p *Projector) Update(c *chart.Chart) {
	for _, l := range c.Labels {
		l.X, l.Y = p.Project(Anchor(l.Bar.Mesh))
	}
}
