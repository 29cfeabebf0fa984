package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

type Vec3 = mgl64.Vec3

// Camera is a perspective camera looking from Position at Target.
// The projection matrix is cached; call UpdateProjectionMatrix after
// changing FOV, Aspect, Near or Far.
type Camera struct {
	Position, Target, Up Vec3
	FOV                  float64 // vertical, degrees
	Aspect               float64
	Near, Far            float64
	projection           mgl64.Mat4
}

func NewPerspective(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		Up:     Vec3{0, 1, 0},
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

func (c *Camera) UpdateProjectionMatrix() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// SetAspect updates the aspect ratio from a surface size and recomputes
// the projection matrix.
func (c *Camera) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = width / height
	c.UpdateProjectionMatrix()
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }
func (c *Camera) View() mgl64.Mat4       { return mgl64.LookAtV(c.Position, c.Target, c.Up) }

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.View())
}

// Project maps a world point to normalized device coordinates.
// Points behind the camera are not rejected.
func (c *Camera) Project(p Vec3) Vec3 {
	return projectWith(c.ViewProjection(), p)
}

// ProjectDepth is Project plus the clip-space w, which is positive for
// points in front of the camera.
func (c *Camera) ProjectDepth(p Vec3) (Vec3, float64) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip.W()), clip.W()
}

// Unproject maps normalized device coordinates back into world space.
func (c *Camera) Unproject(ndc Vec3) Vec3 {
	return projectWith(c.ViewProjection().Inv(), ndc)
}

// RayFromNDC returns the picking ray through an NDC point.
func (c *Camera) RayFromNDC(x, y float64) Ray {
	far := c.Unproject(Vec3{x, y, 0.5})
	return Ray{Origin: c.Position, Direction: far.Sub(c.Position).Normalize()}
}

// Distance is the distance from the camera to its target.
func (c *Camera) Distance() float64 { return c.Position.Sub(c.Target).Len() }

func projectWith(m mgl64.Mat4, p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}
