package scene

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectBox(t *testing.T) {
	r := Ray{Origin: Vec3{0, 0, 10}, Direction: Vec3{0, 0, -1}}

	d, ok := r.IntersectBox(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	require.True(t, ok)
	assert.InDelta(t, 9, d, 1e-12)

	_, ok = r.IntersectBox(Vec3{2, -1, -1}, Vec3{3, 1, 1})
	assert.False(t, ok)

	behind := Ray{Origin: Vec3{0, 0, -10}, Direction: Vec3{0, 0, -1}}
	_, ok = behind.IntersectBox(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	assert.False(t, ok)

	inside := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{1, 0, 0}}
	d, ok = inside.IntersectBox(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	require.True(t, ok)
	assert.InDelta(t, 1, d, 1e-12)
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: Vec3{0, 0, 10}, Direction: Vec3{0, 0, -1}}
	d, ok := r.IntersectSphere(Vec3{0, 0, 0}, 2)
	require.True(t, ok)
	assert.InDelta(t, 8, d, 1e-12)

	_, ok = r.IntersectSphere(Vec3{5, 0, 0}, 2)
	assert.False(t, ok)
}

func TestRaycastNearestFirst(t *testing.T) {
	mat := NewMaterial(colorful.Color{R: 1})
	far := NewMesh("far", Box{1, 1, 1}, mat)
	far.Position = Vec3{0, 0, -5}
	near := NewMesh("near", Box{1, 1, 1}, mat)
	near.Position = Vec3{0, 0, 2}
	ball := NewMesh("ball", Sphere{Radius: 0.5}, mat)
	ball.Position = Vec3{0, 0, -1}
	grid := NewMesh("grid", Lines{}, mat)

	sc := New()
	sc.Add(far, grid, ball, near)

	hits := Raycast(Ray{Origin: Vec3{0, 0, 10}, Direction: Vec3{0, 0, -1}}, sc.Meshes())
	require.Len(t, hits, 3)
	assert.Same(t, near, hits[0].Mesh)
	assert.Same(t, ball, hits[1].Mesh)
	assert.Same(t, far, hits[2].Mesh)
	assert.InDelta(t, 2.5, hits[0].Point.Z(), 1e-12)
}

func TestScaledBoxBounds(t *testing.T) {
	m := NewMesh("bar", Box{0.5, 1, 0.5}, NewMaterial(colorful.Color{}))
	m.Position = Vec3{1, 3, 0}
	m.Scale = Vec3{1, 6, 1}

	min, max := m.Bounds()
	assert.InDelta(t, 0, min.Y(), 1e-12)
	assert.InDelta(t, 6, max.Y(), 1e-12)
	assert.InDelta(t, 0.75, min.X(), 1e-12)
}

func TestSceneRemove(t *testing.T) {
	sc := New()
	a := NewMesh("a", Box{1, 1, 1}, NewMaterial())
	b := NewMesh("b", Box{1, 1, 1}, NewMaterial())
	sc.Add(a, b)

	assert.True(t, sc.Remove(a))
	assert.False(t, sc.Remove(a))
	assert.Equal(t, 1, sc.Len())
	assert.Same(t, b, sc.Meshes()[0])
}
