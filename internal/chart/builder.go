package chart

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bars3d/internal/scene"
)

// DefaultFaceColors are the per-face colors of dual-axis bars, in
// scene.BoxFaces order.
var DefaultFaceColors = []colorful.Color{
	HexColor(0xff0000), HexColor(0x00ff00), HexColor(0x0000ff),
	HexColor(0xffff00), HexColor(0xff00ff), HexColor(0x00ffff),
}

type Layout struct {
	BarWidth   float64
	BaseOffset float64 // gap before the first bar along its axis
	BarSpacing float64 // showcase only
	FaceColors []colorful.Color
}

func DualAxisLayout() Layout {
	return Layout{BarWidth: 0.5, BaseOffset: 0.2, FaceColors: DefaultFaceColors}
}

func ShowcaseLayout() Layout {
	return Layout{BarWidth: 1, BarSpacing: 0.5}
}

// Builder creates bars and labels and adds their meshes to a scene.
type Builder struct {
	scene  *scene.Scene
	layout Layout
	chart  *Chart
}

func NewBuilder(sc *scene.Scene, variant Variant, layout Layout, rnd *Random) *Builder {
	return &Builder{
		scene:  sc,
		layout: layout,
		chart:  &Chart{Variant: variant, rand: rnd},
	}
}

// AddSeries lays out one bar and one label per entry along the series
// axis. The bar's Y position starts at its height; the animation replaces
// it on the first frame.
func (b *Builder) AddSeries(s Series) []*Bar {
	w := b.layout.BarWidth
	bars := make([]*Bar, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		h := s.At(i)
		along := b.layout.BaseOffset + float64(i) + w/2
		pos := scene.Vec3{along, h, w / 2}
		if s.Axis() == AxisZ {
			pos = scene.Vec3{w / 2, h, along}
		}
		mesh := scene.NewMesh(fmt.Sprintf("bar-%s-%d", s.Axis(), i), scene.Box{Width: w, Height: 1, Depth: w}, scene.NewMaterial(b.layout.FaceColors...))
		mesh.Position = pos
		bar := b.add(mesh, s.Axis(), i, h)
		b.chart.Labels = append(b.chart.Labels, newLabel(bar))
		bars = append(bars, bar)
	}
	return bars
}

// AddRow lays out a single centred row of single-color bars along X with a
// base slab underneath. Bars are not labeled.
func (b *Builder) AddRow(values []float64) []*Bar {
	w, gap, n := b.layout.BarWidth, b.layout.BarSpacing, float64(len(values))
	step := w + gap
	bars := make([]*Bar, 0, len(values))
	for i, v := range values {
		mesh := scene.NewMesh(fmt.Sprintf("bar-%d", i), scene.Box{Width: w, Height: v, Depth: w}, scene.NewMaterial(b.chart.rand.Color()))
		mesh.Position = scene.Vec3{float64(i)*step - n*step/2 + w/2, v / 2, 0}
		bars = append(bars, b.add(mesh, AxisX, i, v))
	}
	base := scene.NewMesh("base", scene.Box{Width: step*n - gap, Height: 0.2, Depth: 1}, scene.NewMaterial(HexColor(0x333333)))
	base.Position = scene.Vec3{-0.235, -0.1, 0}
	b.decorate(base)
	return bars
}

func (b *Builder) add(mesh *scene.Mesh, axis Axis, ordinal int, h float64) *Bar {
	bar := &Bar{
		Index:   len(b.chart.Bars),
		Axis:    axis,
		Ordinal: ordinal,
		Height:  h,
		Mesh:    mesh,
		rand:    b.chart.rand,
	}
	mesh.Owner = bar
	b.chart.Bars = append(b.chart.Bars, bar)
	b.scene.Add(mesh)
	return bar
}

func (b *Builder) decorate(meshes ...*scene.Mesh) {
	b.chart.Decorations = append(b.chart.Decorations, meshes...)
	b.scene.Add(meshes...)
}

func (b *Builder) Chart() *Chart { return b.chart }

// BuildDualAxis builds the X series first, then the Z series, then the
// floor, grid and axes.
func BuildDualAxis(sc *scene.Scene, layout Layout, rnd *Random, x, z Series) *Chart {
	b := NewBuilder(sc, DualAxis, layout, rnd)
	b.decorate(Axes(15))
	b.decorate(Floor(15, scene.Vec3{7.5, 0, 7.5}))
	b.decorate(Grid(30, 30))
	b.AddSeries(x)
	b.AddSeries(z)
	return b.Chart()
}

// BuildShowcase builds the row and its base, then the planets and a
// starfield of the given size.
func BuildShowcase(sc *scene.Scene, layout Layout, rnd *Random, values []float64, stars int) *Chart {
	b := NewBuilder(sc, Showcase, layout, rnd)
	b.AddRow(values)
	b.decorate(Planets()...)
	b.decorate(Starfield(rnd, stars, 50)...)
	return b.Chart()
}
