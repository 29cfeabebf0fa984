package chart

import (
	"testing"

	"github.com/san-kum/bars3d/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dualAxis(t *testing.T, x, z []float64) (*scene.Scene, *Chart) {
	t.Helper()
	sc := scene.New()
	c := BuildDualAxis(sc, DualAxisLayout(), NewRandom(1), NewSeries(AxisX, x...), NewSeries(AxisZ, z...))
	return sc, c
}

func TestDualAxisLabelsBindBarsInOrder(t *testing.T) {
	_, c := dualAxis(t, []float64{5, 7, 3}, []float64{4, 8})

	require.Len(t, c.Bars, 5)
	require.Len(t, c.Labels, 5)
	for i, b := range c.Bars {
		assert.Equal(t, i, b.Index)
		assert.Same(t, b, c.Labels[i].Bar)
		assert.Same(t, b, b.Mesh.Owner)
		assert.Equal(t, b.Height, c.Labels[i].Height)
	}
	assert.Equal(t, AxisX, c.Bars[2].Axis)
	assert.Equal(t, AxisZ, c.Bars[3].Axis)
	assert.Equal(t, 0, c.Bars[3].Ordinal)
}

func TestDualAxisPositions(t *testing.T) {
	_, c := dualAxis(t, []float64{5, 7}, []float64{4, 8})

	x1 := c.Bars[1].Mesh
	assert.InDelta(t, 0.2+1+0.25, x1.Position.X(), 1e-12)
	assert.InDelta(t, 7, x1.Position.Y(), 1e-12, "y starts at the height")
	assert.InDelta(t, 0.25, x1.Position.Z(), 1e-12)

	z1 := c.Bars[3].Mesh
	assert.InDelta(t, 0.25, z1.Position.X(), 1e-12)
	assert.InDelta(t, 8, z1.Position.Y(), 1e-12)
	assert.InDelta(t, 0.2+1+0.25, z1.Position.Z(), 1e-12)

	assert.Equal(t, scene.Box{Width: 0.5, Height: 1, Depth: 0.5}, x1.Geometry)
	assert.Equal(t, 1.0, x1.Scale.Y())
	assert.Len(t, x1.Material.Faces, 6)
	assert.Equal(t, DefaultFaceColors[2], x1.Material.Faces[2])
}

func TestDualAxisInitialLabelText(t *testing.T) {
	_, c := dualAxis(t, []float64{5, 2.5}, nil)
	assert.Equal(t, "5", c.Labels[0].Text)
	assert.Equal(t, "2.5", c.Labels[1].Text)
}

func TestEmptySeriesBuildNothing(t *testing.T) {
	sc, c := dualAxis(t, nil, nil)
	assert.Empty(t, c.Bars)
	assert.Empty(t, c.Labels)
	assert.Equal(t, len(c.Decorations), sc.Len())
}

func TestBarsOwnTheirMaterial(t *testing.T) {
	_, c := dualAxis(t, []float64{1, 2}, nil)
	c.Bars[0].OnHit()
	assert.Equal(t, DefaultFaceColors, c.Bars[1].Mesh.Material.Faces)
	assert.NotEqual(t, DefaultFaceColors, c.Bars[0].Mesh.Material.Faces)
}

func TestShowcaseRow(t *testing.T) {
	sc := scene.New()
	c := BuildShowcase(sc, ShowcaseLayout(), NewRandom(7), []float64{1, 1, 1, 1}, 10)

	require.Len(t, c.Bars, 4)
	assert.Empty(t, c.Labels)
	assert.Len(t, c.Decorations, 1+4+10)
	assert.Equal(t, 4+1+4+10, sc.Len())

	// i*(w+s) - n*(w+s)/2 + w/2 with w=1, s=0.5, n=4
	assert.InDelta(t, -2.5, c.Bars[0].Mesh.Position.X(), 1e-12)
	assert.InDelta(t, 2, c.Bars[3].Mesh.Position.X(), 1e-12)
	assert.InDelta(t, 0.5, c.Bars[0].Mesh.Position.Y(), 1e-12)
	assert.Len(t, c.Bars[0].Mesh.Material.Faces, 1)

	base := c.Decorations[0]
	assert.Equal(t, "base", base.Name)
	assert.InDelta(t, 5.5, base.Geometry.Extents().X(), 1e-12)
	assert.Nil(t, base.Owner)
}

func TestRandomizeHeightsKeepsBase(t *testing.T) {
	sc := scene.New()
	c := BuildShowcase(sc, ShowcaseLayout(), NewRandom(3), []float64{1, 1, 1}, 0)
	c.RandomizeHeights(10)
	for _, b := range c.Bars {
		s := b.Scale()
		assert.GreaterOrEqual(t, s, 0.0)
		assert.Less(t, s, 10.0)
		assert.InDelta(t, s/2, b.Mesh.Position.Y(), 1e-12)
		min, _ := b.Mesh.Bounds()
		assert.InDelta(t, 0, min.Y(), 1e-12)
	}
}

func TestStarfieldIsSeeded(t *testing.T) {
	a := Starfield(NewRandom(42), 5, 50)
	b := Starfield(NewRandom(42), 5, 50)
	for i := range a {
		assert.Equal(t, a[i].Position, b[i].Position)
		for k := 0; k < 3; k++ {
			assert.GreaterOrEqual(t, a[i].Position[k], -50.0)
			assert.Less(t, a[i].Position[k], 50.0)
		}
	}
}

func TestGridSegments(t *testing.T) {
	g := Grid(30, 30).Geometry.(scene.Lines)
	assert.Len(t, g.Segments, 62)
	assert.Equal(t, scene.Vec3{-15, 0, -15}, g.Segments[0][0])
}

func TestLabelRounding(t *testing.T) {
	l := &Label{}
	l.SetValue(4.5)
	assert.Equal(t, "5", l.Text)
	l.SetValue(7.49)
	assert.Equal(t, "7", l.Text)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("showcase")
	require.NoError(t, err)
	assert.Equal(t, Showcase, v)

	_, err = ParseVariant("pie")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestSeriesIsImmutable(t *testing.T) {
	in := []float64{1, 2}
	s := NewSeries(AxisX, in...)
	in[0] = 9
	assert.Equal(t, 1.0, s.At(0))
	v := s.Values()
	v[1] = 9
	assert.Equal(t, 2.0, s.At(1))
}
