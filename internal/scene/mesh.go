package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Geometry describes a shape at unit scale, centred on the origin.
type Geometry interface {
	// Extents returns the full size along each axis.
	Extents() Vec3
}

type Box struct {
	Width, Height, Depth float64
}

func (b Box) Extents() Vec3 { return Vec3{b.Width, b.Height, b.Depth} }

// Corners returns the eight box vertices, bottom face first.
func (b Box) Corners() [8]Vec3 {
	x, y, z := b.Width/2, b.Height/2, b.Depth/2
	return [8]Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z},
		{-x, y, -z}, {x, y, -z}, {x, y, z}, {-x, y, z},
	}
}

// BoxFaces lists corner indices per face in material order:
// +x, -x, +y, -y, +z, -z.
var BoxFaces = [6][4]int{
	{1, 5, 6, 2},
	{0, 3, 7, 4},
	{4, 7, 6, 5},
	{0, 1, 2, 3},
	{3, 2, 6, 7},
	{0, 4, 5, 1},
}

// BoxEdges lists corner index pairs for the twelve box edges.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

type Sphere struct {
	Radius float64
}

func (s Sphere) Extents() Vec3 { return Vec3{2 * s.Radius, 2 * s.Radius, 2 * s.Radius} }

// Plane is a horizontal rectangle in the XZ plane.
type Plane struct {
	Width, Depth float64
}

func (p Plane) Extents() Vec3 { return Vec3{p.Width, 0, p.Depth} }

// Lines is a set of line segments in local space. Lines are never picked.
type Lines struct {
	Segments [][2]Vec3
}

func (l Lines) Extents() Vec3 { return Vec3{} }

// Material holds one color per face. Single-color materials have one entry.
type Material struct {
	Faces []colorful.Color
}

func NewMaterial(colors ...colorful.Color) *Material {
	faces := make([]colorful.Color, len(colors))
	copy(faces, colors)
	return &Material{Faces: faces}
}

// Color returns the first face color.
func (m *Material) Color() colorful.Color {
	if len(m.Faces) == 0 {
		return colorful.Color{}
	}
	return m.Faces[0]
}

// Face returns the color of face i, falling back to the first face.
func (m *Material) Face(i int) colorful.Color {
	if i >= 0 && i < len(m.Faces) {
		return m.Faces[i]
	}
	return m.Color()
}

// SetColor paints every face with c.
func (m *Material) SetColor(c colorful.Color) {
	for i := range m.Faces {
		m.Faces[i] = c
	}
}

func (m *Material) SetFace(i int, c colorful.Color) {
	if i >= 0 && i < len(m.Faces) {
		m.Faces[i] = c
	}
}

// Mesh is a positioned, scaled geometry with a material. Owner lets the
// code that created the mesh find its way back from a pick result.
type Mesh struct {
	Name     string
	Geometry Geometry
	Material *Material
	Position Vec3
	Scale    Vec3
	Owner    any
}

func NewMesh(name string, geo Geometry, mat *Material) *Mesh {
	return &Mesh{
		Name:     name,
		Geometry: geo,
		Material: mat,
		Scale:    Vec3{1, 1, 1},
	}
}

// Size is the world-space size after scaling.
func (m *Mesh) Size() Vec3 {
	e := m.Geometry.Extents()
	return Vec3{e[0] * m.Scale[0], e[1] * m.Scale[1], e[2] * m.Scale[2]}
}

// Bounds returns the world-space axis-aligned bounding box.
func (m *Mesh) Bounds() (Vec3, Vec3) {
	half := m.Size().Mul(0.5)
	return m.Position.Sub(half), m.Position.Add(half)
}

// World maps a local-space point to world space.
func (m *Mesh) World(p Vec3) Vec3 {
	return Vec3{p[0]*m.Scale[0] + m.Position[0], p[1]*m.Scale[1] + m.Position[1], p[2]*m.Scale[2] + m.Position[2]}
}
