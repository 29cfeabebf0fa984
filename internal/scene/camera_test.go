package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookingAtOrigin(w, h float64) *Camera {
	c := NewPerspective(75, w/h, 0.1, 1000)
	c.Position = Vec3{0, 10, 20}
	return c
}

func TestProjectTargetToViewportCentre(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	c := lookingAtOrigin(vp.Width, vp.Height)

	ndc := c.Project(Vec3{0, 0, 0})
	assert.InDelta(t, 0, ndc.X(), 1e-9)
	assert.InDelta(t, 0, ndc.Y(), 1e-9)

	x, y := vp.ToPixel(ndc)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)
}

func TestProjectIsDeterministic(t *testing.T) {
	c := lookingAtOrigin(800, 600)
	p := Vec3{3.2, 4.5, -1.25}
	assert.Equal(t, c.Project(p), c.Project(p))
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	c := lookingAtOrigin(1024, 768)
	p := Vec3{2, 3, 4}
	back := c.Unproject(c.Project(p))
	assert.InDelta(t, p.X(), back.X(), 1e-6)
	assert.InDelta(t, p.Y(), back.Y(), 1e-6)
	assert.InDelta(t, p.Z(), back.Z(), 1e-6)
}

func TestPointsAboveTargetProjectUp(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	c := lookingAtOrigin(vp.Width, vp.Height)

	_, y := vp.ToPixel(c.Project(Vec3{0, 2, 0}))
	assert.Less(t, y, 300.0)

	x, _ := vp.ToPixel(c.Project(Vec3{2, 0, 0}))
	assert.Greater(t, x, 400.0)
}

func TestSetAspectChangesProjection(t *testing.T) {
	c := lookingAtOrigin(800, 600)
	p := Vec3{5, 0, 0}
	before := c.Project(p)

	c.SetAspect(1600, 600)
	after := c.Project(p)

	assert.InDelta(t, 1600.0/600.0, c.Aspect, 1e-12)
	assert.Less(t, math.Abs(after.X()), math.Abs(before.X()))

	c.SetAspect(0, 600)
	assert.InDelta(t, 1600.0/600.0, c.Aspect, 1e-12, "zero size must be ignored")
}

func TestRayFromNDCThroughCentreHitsTarget(t *testing.T) {
	c := lookingAtOrigin(800, 600)
	r := c.RayFromNDC(0, 0)

	require.InDelta(t, 1, r.Direction.Len(), 1e-9)
	toTarget := c.Target.Sub(c.Position).Normalize()
	assert.InDelta(t, 1, r.Direction.Dot(toTarget), 1e-9)
}

func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480}
	nx, ny := vp.ToNDC(160, 360)
	x, y := vp.ToPixel(Vec3{nx, ny, 0})
	assert.InDelta(t, 160, x, 1e-9)
	assert.InDelta(t, 360, y, 1e-9)

	nx, ny = vp.ToNDC(0, 0)
	assert.Equal(t, -1.0, nx)
	assert.Equal(t, 1.0, ny)
}
