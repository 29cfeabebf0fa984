package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bars3d/internal/anim"
	"github.com/san-kum/bars3d/internal/scene"
)

var _ = Describe("Projector", func() {
	var (
		cam *scene.Camera
		vp  *scene.Viewport
		p   *anim.Projector
	)

	BeforeEach(func() {
		vp = &scene.Viewport{Width: 800, Height: 600}
		cam = scene.NewPerspective(75, vp.Aspect(), 0.1, 1000)
		cam.Position = scene.Vec3{0, 10, 20}
		p = anim.NewProjector(cam, vp)
	})

	It("maps the camera target to the viewport centre", func() {
		x, y := p.Project(scene.Vec3{0, 0, 0})
		Expect(x).To(BeNumerically("~", 400, 1e-6))
		Expect(y).To(BeNumerically("~", 300, 1e-6))
	})

	It("is deterministic for a fixed camera and viewport", func() {
		pt := scene.Vec3{1.25, 3.5, 0.25}
		x1, y1 := p.Project(pt)
		x2, y2 := p.Project(pt)
		Expect(x1).To(Equal(x2))
		Expect(y1).To(Equal(y2))
	})

	It("anchors labels above the top face", func() {
		m := scene.NewMesh("bar", scene.Box{Width: 0.5, Height: 1, Depth: 0.5}, scene.NewMaterial())
		m.Position = scene.Vec3{1, 3, 2}
		m.Scale = scene.Vec3{1, 6, 1}
		Expect(anim.Anchor(m)).To(Equal(scene.Vec3{1, 3 + 3 + anim.LabelLift, 2}))
	})

	It("writes label positions for every bar", func() {
		c := buildChart([]float64{5, 7, 3}, []float64{4})
		anim.NewDriver(anim.DefaultStep).Advance(c)
		p.Update(c)
		for _, l := range c.Labels {
			x, y := p.Project(anim.Anchor(l.Bar.Mesh))
			Expect(l.X).To(Equal(x))
			Expect(l.Y).To(Equal(y))
		}
	})

	It("leaves off-screen labels off-screen", func() {
		x, _ := p.Project(scene.Vec3{500, 0, 0})
		Expect(x).To(BeNumerically(">", vp.Width))
	})

	It("follows viewport resizes", func() {
		vp.Width, vp.Height = 1600, 1200
		cam.SetAspect(vp.Width, vp.Height)
		x, y := p.Project(scene.Vec3{0, 0, 0})
		Expect(x).To(BeNumerically("~", 800, 1e-6))
		Expect(y).To(BeNumerically("~", 600, 1e-6))
	})
})
