package scene

// Scene is an ordered list of meshes. Draw order is insertion order.
type Scene struct {
	meshes []*Mesh
}

func New() *Scene { return &Scene{meshes: make([]*Mesh, 0, 64)} }

func (s *Scene) Add(meshes ...*Mesh) { s.meshes = append(s.meshes, meshes...) }

// Remove drops m from the scene and reports whether it was present.
func (s *Scene) Remove(m *Mesh) bool {
	for i, cur := range s.meshes {
		if cur == m {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return true
		}
	}
	return false
}

// Meshes returns the live mesh list. Callers must not append to it.
func (s *Scene) Meshes() []*Mesh { return s.meshes }

func (s *Scene) Len() int { return len(s.meshes) }
