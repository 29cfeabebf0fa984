package anim_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bars3d/internal/anim"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/scene"
)

type step struct {
	name  string
	time  float64
	label float64
}

type recordingControls struct {
	driver *anim.Driver
	chart  *chart.Chart
	steps  *[]step
}

func (r recordingControls) Update() bool {
	*r.steps = append(*r.steps, step{"controls", r.driver.Time(), r.chart.Labels[0].Y})
	return false
}

type recordingRenderer struct {
	driver *anim.Driver
	chart  *chart.Chart
	steps  *[]step
	err    error
}

func (r recordingRenderer) Render(*scene.Scene, *scene.Camera) error {
	*r.steps = append(*r.steps, step{"render", r.driver.Time(), r.chart.Labels[0].Y})
	return r.err
}

var _ = Describe("Frame", func() {
	var (
		f     *anim.Frame
		steps []step
	)

	BeforeEach(func() {
		steps = nil
		sc := scene.New()
		c := chart.BuildDualAxis(sc, chart.DualAxisLayout(), chart.NewRandom(1),
			chart.NewSeries(chart.AxisX, 5, 7), chart.NewSeries(chart.AxisZ))
		vp := &scene.Viewport{Width: 800, Height: 600}
		cam := scene.NewPerspective(75, vp.Aspect(), 0.1, 1000)
		cam.Position = scene.Vec3{0, 10, 20}
		d := anim.NewDriver(anim.DefaultStep)
		f = &anim.Frame{
			Chart:     c,
			Scene:     sc,
			Camera:    cam,
			Driver:    d,
			Controls:  recordingControls{d, c, &steps},
			Projector: anim.NewProjector(cam, vp),
			Renderer:  recordingRenderer{driver: d, chart: c, steps: &steps},
		}
	})

	It("animates before controls and projects before rendering", func() {
		Expect(f.Tick()).To(Succeed())
		Expect(steps).To(HaveLen(2))
		Expect(steps[0].name).To(Equal("controls"))
		Expect(steps[0].time).To(BeNumerically("~", anim.DefaultStep, 1e-12))
		Expect(steps[0].label).To(BeZero(), "labels are not projected yet")
		Expect(steps[1].name).To(Equal("render"))
		Expect(steps[1].label).NotTo(BeZero())
	})

	It("counts ticks", func() {
		for i := 0; i < 3; i++ {
			Expect(f.Tick()).To(Succeed())
		}
		Expect(f.Count()).To(Equal(3))
	})

	It("skips animation without a driver", func() {
		f.Driver = nil
		f.Controls = nil
		f.Renderer = nil
		Expect(f.Tick()).To(Succeed())
		Expect(f.Chart.Bars[0].Scale()).To(Equal(1.0))
	})

	It("returns renderer errors", func() {
		boom := errors.New("boom")
		f.Renderer = recordingRenderer{driver: f.Driver, chart: f.Chart, steps: &steps, err: boom}
		Expect(f.Tick()).To(MatchError(boom))
	})
})

var _ = Describe("Loop", func() {
	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		n := 0
		err := anim.Loop(ctx, time.Millisecond, func() error {
			n++
			if n == 3 {
				cancel()
			}
			return nil
		})
		Expect(err).To(MatchError(context.Canceled))
		Expect(n).To(BeNumerically(">=", 3))
	})

	It("stops on the first tick error", func() {
		boom := errors.New("boom")
		err := anim.Loop(context.Background(), time.Millisecond, func() error { return boom })
		Expect(err).To(MatchError(boom))
	})
})
