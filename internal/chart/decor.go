package chart

import (
	"fmt"

	"github.com/san-kum/bars3d/internal/scene"
)

// Axes returns X, Y and Z axis lines of length l colored red, green, blue.
func Axes(l float64) *scene.Mesh {
	o := scene.Vec3{}
	geo := scene.Lines{Segments: [][2]scene.Vec3{
		{o, {l, 0, 0}},
		{o, {0, l, 0}},
		{o, {0, 0, l}},
	}}
	return scene.NewMesh("axes", geo, scene.NewMaterial(HexColor(0xff0000), HexColor(0x00ff00), HexColor(0x0000ff)))
}

// Floor is a white square plane of the given size.
func Floor(size float64, centre scene.Vec3) *scene.Mesh {
	m := scene.NewMesh("floor", scene.Plane{Width: size, Depth: size}, scene.NewMaterial(HexColor(0xffffff)))
	m.Position = centre
	return m
}

// Grid is a black line grid on Y=0 centred on the origin.
func Grid(size float64, divisions int) *scene.Mesh {
	half, step := size/2, size/float64(divisions)
	var segs [][2]scene.Vec3
	for i := 0; i <= divisions; i++ {
		v := -half + float64(i)*step
		segs = append(segs,
			[2]scene.Vec3{{-half, 0, v}, {half, 0, v}},
			[2]scene.Vec3{{v, 0, -half}, {v, 0, half}},
		)
	}
	return scene.NewMesh("grid", scene.Lines{Segments: segs}, scene.NewMaterial(HexColor(0x000000)))
}

type planet struct {
	name   string
	radius float64
	color  uint32
	pos    scene.Vec3
}

var planets = []planet{
	{"sun", 4, 0xffff00, scene.Vec3{0, 5, -15}},
	{"moon", 2, 0xa9a9a9, scene.Vec3{0, 5, 20}},
	{"earth", 1, 0x1e90ff, scene.Vec3{5, 0, -10}},
	{"mars", 0.8, 0xb22222, scene.Vec3{-5, 0, 10}},
}

// Planets returns the sun, moon, earth and mars spheres.
func Planets() []*scene.Mesh {
	out := make([]*scene.Mesh, 0, len(planets))
	for _, p := range planets {
		m := scene.NewMesh(p.name, scene.Sphere{Radius: p.radius}, scene.NewMaterial(HexColor(p.color)))
		m.Position = p.pos
		out = append(out, m)
	}
	return out
}

// Starfield scatters n small white spheres uniformly in [-half, half)^3.
func Starfield(rnd *Random, n int, half float64) []*scene.Mesh {
	out := make([]*scene.Mesh, 0, n)
	for i := 0; i < n; i++ {
		m := scene.NewMesh(fmt.Sprintf("star-%d", i), scene.Sphere{Radius: 0.1}, scene.NewMaterial(HexColor(0xffffff)))
		m.Position = scene.Vec3{rnd.Range(-half, half), rnd.Range(-half, half), rnd.Range(-half, half)}
		out = append(out, m)
	}
	return out
}
