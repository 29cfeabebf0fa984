package viz

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bars3d/internal/scene"
)

const (
	circleSegments = 24
	pointRadius    = 0.25 // spheres smaller than this draw as a single dot
)

type Edge struct {
	Start, End scene.Vec3
	Color      colorful.Color
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0, 64)} }

func (w *Wireframe) AddEdge(s, e scene.Vec3, c colorful.Color) {
	w.Edges = append(w.Edges, Edge{s, e, c})
}
func (w *Wireframe) AddPoint(p scene.Vec3, c colorful.Color) { w.Edges = append(w.Edges, Edge{p, p, c}) }
func (w *Wireframe) Clear()                                  { w.Edges = w.Edges[:0] }

// edgeFace maps each box edge to the first face that contains it, so edges
// take that face's material color.
var edgeFace = func() [12]int {
	var out [12]int
	for i, e := range scene.BoxEdges {
		for f, face := range scene.BoxFaces {
			if contains(face, e[0]) && contains(face, e[1]) {
				out[i] = f
				break
			}
		}
	}
	return out
}()

func contains(face [4]int, v int) bool {
	for _, c := range face {
		if c == v {
			return true
		}
	}
	return false
}

// AddMesh appends the world-space outline of a mesh.
func (w *Wireframe) AddMesh(m *scene.Mesh) {
	mat := m.Material
	if mat == nil {
		mat = scene.NewMaterial(colorful.Color{R: 1, G: 1, B: 1})
	}
	switch g := m.Geometry.(type) {
	case scene.Box:
		corners := g.Corners()
		for i, e := range scene.BoxEdges {
			w.AddEdge(m.World(corners[e[0]]), m.World(corners[e[1]]), mat.Face(edgeFace[i]))
		}
	case scene.Plane:
		x, z := g.Width/2, g.Depth/2
		pts := [4]scene.Vec3{{-x, 0, -z}, {x, 0, -z}, {x, 0, z}, {-x, 0, z}}
		for i := range pts {
			w.AddEdge(m.World(pts[i]), m.World(pts[(i+1)%4]), mat.Color())
		}
	case scene.Sphere:
		r := g.Radius * math.Max(m.Scale[0], math.Max(m.Scale[1], m.Scale[2]))
		if r < pointRadius {
			w.AddPoint(m.Position, mat.Color())
			return
		}
		for axis := 0; axis < 3; axis++ {
			prev := circlePoint(axis, r, 0)
			for i := 1; i <= circleSegments; i++ {
				next := circlePoint(axis, r, 2*math.Pi*float64(i)/circleSegments)
				w.AddEdge(m.Position.Add(prev), m.Position.Add(next), mat.Color())
				prev = next
			}
		}
	case scene.Lines:
		for i, s := range g.Segments {
			w.AddEdge(m.World(s[0]), m.World(s[1]), mat.Face(i))
		}
	}
}

// circlePoint is a point on a great circle perpendicular to the given axis.
func circlePoint(axis int, r, a float64) scene.Vec3 {
	s, c := r*math.Sin(a), r*math.Cos(a)
	switch axis {
	case 0:
		return scene.Vec3{0, c, s}
	case 1:
		return scene.Vec3{c, 0, s}
	}
	return scene.Vec3{c, s, 0}
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          colorful.Color
}

// Renderer draws scenes onto a canvas. It satisfies anim.Renderer.
type Renderer struct {
	Canvas *Canvas
	wire   *Wireframe
	proj   []ProjectedEdge
}

func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{Canvas: c, wire: NewWireframe()}
}

// Render clears the canvas and draws every mesh of the scene.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) error {
	r.Canvas.Clear()
	r.wire.Clear()
	for _, m := range sc.Meshes() {
		r.wire.AddMesh(m)
	}
	r.proj = Render3D(r.Canvas, r.wire, cam, r.proj[:0])
	return nil
}

// Render3D draws the wireframe far to near so nearer edges win the color
// of shared cells. Edges are clipped against the near plane. buf is reused
// for the projected edges and returned.
func Render3D(c *Canvas, w *Wireframe, cam *scene.Camera, buf []ProjectedEdge) []ProjectedEdge {
	if c == nil || w == nil || cam == nil {
		return buf
	}
	pw, ph := c.Pixels()
	vp := scene.Viewport{Width: float64(pw), Height: float64(ph)}
	for _, e := range w.Edges {
		a, b, ok := clipNear(cam, e.Start, e.End)
		if !ok {
			continue
		}
		na, wa := cam.ProjectDepth(a)
		nb, wb := cam.ProjectDepth(b)
		x1, y1 := vp.ToPixel(na)
		x2, y2 := vp.ToPixel(nb)
		if offscreen(x1, y1, x2, y2, float64(pw), float64(ph)) {
			continue
		}
		buf = append(buf, ProjectedEdge{
			X1: int(x1), Y1: int(y1), X2: int(x2), Y2: int(y2),
			Depth: (wa + wb) / 2,
			Color: e.Color,
		})
	}
	sort.SliceStable(buf, func(i, j int) bool { return buf[i].Depth > buf[j].Depth })
	for _, e := range buf {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.SetColor(e.X1, e.Y1, e.Color)
		} else {
			c.DrawLineColor(e.X1, e.Y1, e.X2, e.Y2, e.Color)
		}
	}
	return buf
}

// clipNear trims the segment to the part in front of the near plane.
func clipNear(cam *scene.Camera, a, b scene.Vec3) (scene.Vec3, scene.Vec3, bool) {
	_, wa := cam.ProjectDepth(a)
	_, wb := cam.ProjectDepth(b)
	near := cam.Near
	switch {
	case wa < near && wb < near:
		return a, b, false
	case wa < near:
		a = a.Add(b.Sub(a).Mul((near - wa) / (wb - wa)))
	case wb < near:
		b = b.Add(a.Sub(b).Mul((near - wb) / (wa - wb)))
	}
	return a, b, true
}

// offscreen rejects segments entirely to one side of the canvas and those
// too long to rasterize.
func offscreen(x1, y1, x2, y2, w, h float64) bool {
	const limit = 1 << 14
	if math.Abs(x1) > limit || math.Abs(x2) > limit || math.Abs(y1) > limit || math.Abs(y2) > limit {
		return true
	}
	return (x1 < 0 && x2 < 0) || (y1 < 0 && y2 < 0) || (x1 >= w && x2 >= w) || (y1 >= h && y2 >= h)
}
