package anim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bars3d/internal/anim"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/scene"
)

func buildChart(x, z []float64) *chart.Chart {
	return chart.BuildDualAxis(scene.New(), chart.DualAxisLayout(), chart.NewRandom(1),
		chart.NewSeries(chart.AxisX, x...), chart.NewSeries(chart.AxisZ, z...))
}

var _ = Describe("ScaleAt", func() {
	It("is the original height at t=0 for index 0", func() {
		Expect(anim.ScaleAt(5, 0, 0)).To(BeNumerically("~", 5.0, 1e-12))
	})

	It("stays within half and one and a half times the height", func() {
		for i := 0; i < 8; i++ {
			for t := 0.0; t < 20; t += 0.05 {
				s := anim.ScaleAt(7, t, i)
				Expect(s).To(BeNumerically(">=", 3.5-1e-12))
				Expect(s).To(BeNumerically("<=", 10.5+1e-12))
			}
		}
	})

	It("has period 2π", func() {
		for _, t := range []float64{0, 0.3, 1.7, 4.2} {
			Expect(anim.ScaleAt(3, t+2*math.Pi, 2)).To(BeNumerically("~", anim.ScaleAt(3, t, 2), 1e-9))
		}
	})

	It("is phase-shifted by the construction index", func() {
		Expect(anim.ScaleAt(4, 1.5, 1)).To(BeNumerically("~", anim.ScaleAt(4, 2.5, 0), 1e-12))
	})

	It("is constantly zero for zero height", func() {
		Expect(anim.ScaleAt(0, 1.234, 3)).To(BeZero())
	})
})

var _ = Describe("Driver", func() {
	var (
		c *chart.Chart
		d *anim.Driver
	)

	BeforeEach(func() {
		c = buildChart([]float64{5, 7, 3}, []float64{4, 8})
		d = anim.NewDriver(anim.DefaultStep)
	})

	It("advances time by a fixed step per frame", func() {
		for i := 0; i < 10; i++ {
			d.Advance(c)
		}
		Expect(d.Time()).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("falls back to the default step", func() {
		Expect(anim.NewDriver(0).Step()).To(Equal(anim.DefaultStep))
	})

	It("keeps every base on Y=0", func() {
		for f := 0; f < 200; f++ {
			d.Advance(c)
			for _, b := range c.Bars {
				Expect(b.Mesh.Position.Y()).To(BeNumerically("~", b.Scale()/2, 1e-12))
			}
		}
	})

	It("scales each bar by its own index and height", func() {
		d.Advance(c)
		for i, b := range c.Bars {
			Expect(b.Scale()).To(BeNumerically("~", anim.ScaleAt(b.Height, d.Time(), i), 1e-12))
		}
	})

	It("shows the rounded scale in the label", func() {
		d.Advance(c)
		for i, l := range c.Labels {
			Expect(l.Text).To(Equal(chart.FormatHeight(math.Round(c.Bars[i].Scale()))))
		}
	})

	It("shows the original height before the first frame and at t=0", func() {
		Expect(c.Labels[0].Text).To(Equal("5"))
		d.Apply(c)
		Expect(c.Bars[0].Scale()).To(BeNumerically("~", 5.0, 1e-12))
		Expect(c.Labels[0].Text).To(Equal("5"))
	})

	It("never rebinds labels", func() {
		for f := 0; f < 50; f++ {
			d.Advance(c)
		}
		for i, l := range c.Labels {
			Expect(l.Bar).To(BeIdenticalTo(c.Bars[i]))
		}
	})

	It("handles an empty chart", func() {
		empty := buildChart(nil, nil)
		Expect(func() { d.Advance(empty) }).NotTo(Panic())
	})
})
