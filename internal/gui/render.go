package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bars3d/internal/scene"
)

func vec(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

// toCamera mirrors the session camera so raylib draws what the session
// projects labels and picks against.
func toCamera(c *scene.Camera) rl.Camera3D {
	return rl.NewCamera3D(vec(c.Position), vec(c.Target), vec(c.Up), float32(c.FOV), rl.CameraPerspective)
}

func drawScene(sc *scene.Scene) {
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()
	for _, m := range sc.Meshes() {
		drawMesh(m)
	}
}

func drawMesh(m *scene.Mesh) {
	mat := m.Material
	if mat == nil {
		mat = scene.NewMaterial(colorful.Color{R: 1, G: 1, B: 1})
	}
	switch g := m.Geometry.(type) {
	case scene.Box:
		drawBox(m, g, mat)
	case scene.Sphere:
		r := g.Radius * math.Max(m.Scale[0], math.Max(m.Scale[1], m.Scale[2]))
		rl.DrawSphere(vec(m.Position), float32(r), toColor(mat.Color()))
	case scene.Plane:
		size := rl.NewVector2(float32(g.Width*m.Scale[0]), float32(g.Depth*m.Scale[2]))
		rl.DrawPlane(vec(m.Position), size, toColor(mat.Color()))
	case scene.Lines:
		for i, s := range g.Segments {
			rl.DrawLine3D(vec(m.World(s[0])), vec(m.World(s[1])), toColor(mat.Face(i)))
		}
	}
}

// drawBox fills each face with its own material color as two triangles.
func drawBox(m *scene.Mesh, b scene.Box, mat *scene.Material) {
	local := b.Corners()
	var world [8]rl.Vector3
	for i, c := range local {
		world[i] = vec(m.World(c))
	}
	for f, face := range scene.BoxFaces {
		col := toColor(mat.Face(f))
		rl.DrawTriangle3D(world[face[0]], world[face[1]], world[face[2]], col)
		rl.DrawTriangle3D(world[face[0]], world[face[2]], world[face[3]], col)
	}
}
