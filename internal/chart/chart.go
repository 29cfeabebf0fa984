package chart

import (
	"math"
	"strconv"

	"github.com/san-kum/bars3d/internal/scene"
)

// Bar is one data entry rendered as a box mesh.
type Bar struct {
	Index   int // construction index across all series
	Axis    Axis
	Ordinal int // position within its series
	Height  float64
	Mesh    *scene.Mesh
	rand    *Random
}

// Scale is the current vertical scale of the mesh.
func (b *Bar) Scale() float64 { return b.Mesh.Scale[1] }

// SetScale sets the vertical scale and keeps the base on Y=0.
func (b *Bar) SetScale(sy float64) {
	b.Mesh.Scale[1] = sy
	b.Mesh.Position[1] = sy / 2
}

// Recolor gives every face of the bar a new random color.
func (b *Bar) Recolor() {
	for i := range b.Mesh.Material.Faces {
		b.Mesh.Material.Faces[i] = b.rand.Color()
	}
}

// OnHit is called when a pick ray hits the bar.
func (b *Bar) OnHit() { b.Recolor() }

// Label is the on-screen text bound to a bar.
type Label struct {
	Bar    *Bar
	Height float64 // original, unscaled
	Text   string
	X, Y   float64 // pixels, top-left origin
}

func newLabel(b *Bar) *Label {
	return &Label{Bar: b, Height: b.Height, Text: FormatHeight(b.Height)}
}

// SetValue shows v rounded to the nearest integer.
func (l *Label) SetValue(v float64) {
	l.Text = strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}

// FormatHeight renders a height with the shortest exact decimal form.
func FormatHeight(h float64) string { return strconv.FormatFloat(h, 'f', -1, 64) }

type Chart struct {
	Variant     Variant
	Bars        []*Bar
	Labels      []*Label
	Decorations []*scene.Mesh
	rand        *Random
}

// Meshes returns the bar meshes in construction order.
func (c *Chart) Meshes() []*scene.Mesh {
	out := make([]*scene.Mesh, len(c.Bars))
	for i, b := range c.Bars {
		out[i] = b.Mesh
	}
	return out
}

// Label returns the label bound to bar i, or nil for unlabeled charts.
func (c *Chart) Label(i int) *Label {
	if i < 0 || i >= len(c.Labels) {
		return nil
	}
	return c.Labels[i]
}

func (c *Chart) RecolorAll() {
	for _, b := range c.Bars {
		b.Recolor()
	}
}

// RandomizeHeights sets every bar to a random scale in [0, max).
func (c *Chart) RandomizeHeights(max float64) {
	for _, b := range c.Bars {
		b.SetScale(c.rand.Float64() * max)
	}
}

// Scales returns the current vertical scale of every bar.
func (c *Chart) Scales() []float64 {
	out := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		out[i] = b.Scale()
	}
	return out
}
