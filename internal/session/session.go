// Package session wires one chart scene together: scene, camera, chart,
// animation, label projection and picking, all built from a config.Config.
//
// Sessions are independent of each other and are not safe for concurrent
// use; hosts call every method from the goroutine that drives frames.
package session

import (
	"fmt"
	"log/slog"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bars3d/internal/anim"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/config"
	"github.com/san-kum/bars3d/internal/interact"
	"github.com/san-kum/bars3d/internal/scene"
)

// RandomHeightMax bounds the heights a showcase miss assigns.
const RandomHeightMax = 10.0

type Session struct {
	cfg *config.Config
	log *slog.Logger

	Scene     *scene.Scene
	Camera    *scene.Camera
	Viewport  *scene.Viewport
	Orbit     *scene.Orbit
	Chart     *chart.Chart
	Driver    *anim.Driver // nil for the showcase variant
	Projector *anim.Projector
	Handler   *interact.Handler
	Frame     *anim.Frame

	renderer anim.Renderer
	last     interact.Result
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.log = l } }

// WithViewport overrides the configured viewport size.
func WithViewport(width, height float64) Option {
	return func(s *Session) { s.Viewport = &scene.Viewport{Width: width, Height: height} }
}

func WithRenderer(r anim.Renderer) Option { return func(s *Session) { s.renderer = r } }

func New(cfg *config.Config, opts ...Option) (*Session, error) {
	cfg = cfg.Clone()
	cfg.ApplyVariantDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.Viewport == nil {
		s.Viewport = &scene.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	cfg := s.cfg
	variant, err := chart.ParseVariant(cfg.Variant)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	layout, err := layoutFor(variant, cfg.Layout)
	if err != nil {
		return err
	}
	rnd := chart.NewRandom(cfg.Seed)

	s.Scene = scene.New()
	s.Camera = scene.NewPerspective(cfg.Camera.FOV, s.Viewport.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	s.Camera.Position = scene.Vec3(cfg.Camera.Position)
	s.Camera.Target = scene.Vec3(cfg.Camera.Target)
	s.Orbit = scene.NewOrbit(s.Camera)
	s.Driver = nil

	var (
		targets func() []*scene.Mesh
		onMiss  func()
	)
	switch variant {
	case chart.DualAxis:
		s.Chart = chart.BuildDualAxis(s.Scene, layout, rnd,
			chart.NewSeries(chart.AxisX, cfg.Data.X...),
			chart.NewSeries(chart.AxisZ, cfg.Data.Z...))
		s.Driver = anim.NewDriver(cfg.Step)
		targets = s.Chart.Meshes
		onMiss = s.Chart.RecolorAll
	case chart.Showcase:
		s.Chart = chart.BuildShowcase(s.Scene, layout, rnd, cfg.Data.Row, cfg.Stars)
		targets = s.Scene.Meshes
		onMiss = func() { s.Chart.RandomizeHeights(RandomHeightMax) }
	}

	s.Projector = anim.NewProjector(s.Camera, s.Viewport)
	s.Handler = interact.NewHandler(s.Camera, s.Viewport, targets, onMiss)
	s.Frame = &anim.Frame{
		Chart:     s.Chart,
		Scene:     s.Scene,
		Camera:    s.Camera,
		Driver:    s.Driver,
		Controls:  s.Orbit,
		Projector: s.Projector,
		Renderer:  s.renderer,
	}
	s.last = interact.Result{}
	s.log.Debug("session built",
		"variant", variant,
		"bars", len(s.Chart.Bars),
		"labels", len(s.Chart.Labels),
		"meshes", s.Scene.Len(),
		"viewport", fmt.Sprintf("%.0fx%.0f", s.Viewport.Width, s.Viewport.Height))
	return nil
}

func layoutFor(v chart.Variant, lc config.LayoutConfig) (chart.Layout, error) {
	l := chart.Layout{BarWidth: lc.BarWidth, BaseOffset: lc.BaseOffset, BarSpacing: lc.BarSpacing}
	if v == chart.Showcase {
		return l, nil
	}
	l.FaceColors = make([]colorful.Color, 0, len(lc.FaceColors))
	for _, hex := range lc.FaceColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return l, fmt.Errorf("session: %w: face color %q", config.ErrInvalid, hex)
		}
		l.FaceColors = append(l.FaceColors, c)
	}
	if len(l.FaceColors) == 0 {
		l.FaceColors = chart.DefaultFaceColors
	}
	return l, nil
}

// Tick runs one frame.
func (s *Session) Tick() error { return s.Frame.Tick() }

// Refresh applies pending camera input, reprojects labels and renders
// without advancing the animation or the frame count.
func (s *Session) Refresh() error {
	s.Orbit.Update()
	s.Projector.Update(s.Chart)
	if s.renderer != nil {
		return s.renderer.Render(s.Scene, s.Camera)
	}
	return nil
}

// PointerDown hit-tests a press at viewport pixel (x, y).
func (s *Session) PointerDown(x, y float64) interact.Result {
	res := s.Handler.PointerDown(x, y)
	s.last = res
	attrs := []any{"x", x, "y", y, "result", res.Kind}
	if res.Mesh != nil {
		attrs = append(attrs, "mesh", res.Mesh.Name, "distance", res.Distance)
	}
	s.log.Debug("pointer down", attrs...)
	return res
}

// Resize updates the viewport and the camera aspect ratio.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Viewport.Width, s.Viewport.Height = width, height
	s.Camera.SetAspect(width, height)
	s.Projector.Update(s.Chart)
	s.log.Debug("resize", "width", width, "height", height)
}

// Reset rebuilds the scene from the config, keeping the viewport size.
func (s *Session) Reset() error {
	s.log.Debug("reset")
	return s.build()
}

// SetRenderer replaces the renderer called at the end of every tick.
func (s *Session) SetRenderer(r anim.Renderer) {
	s.renderer = r
	s.Frame.Renderer = r
}

func (s *Session) Config() *config.Config      { return s.cfg.Clone() }
func (s *Session) Variant() chart.Variant      { return s.Chart.Variant }
func (s *Session) Frames() int                 { return s.Frame.Count() }
func (s *Session) LastResult() interact.Result { return s.last }

// Time is the animation time, zero for charts that do not animate.
func (s *Session) Time() float64 {
	if s.Driver == nil {
		return 0
	}
	return s.Driver.Time()
}
