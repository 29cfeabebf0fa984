package scene

import (
	"math"
	"sort"
)

type Ray struct {
	Origin, Direction Vec3
}

func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Mul(t)) }

// IntersectBox uses the slab method. It returns the entry distance, or the
// exit distance when the origin is inside the box.
func (r Ray) IntersectBox(min, max Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for a := 0; a < 3; a++ {
		o, d := r.Origin[a], r.Direction[a]
		if d == 0 {
			if o < min[a] || o > max[a] {
				return 0, false
			}
			continue
		}
		t1, t2 := (min[a]-o)/d, (max[a]-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin, tmax = math.Max(tmin, t1), math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}

func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}

// Intersect tests the ray against the mesh in world space.
func (m *Mesh) Intersect(r Ray) (float64, bool) {
	switch g := m.Geometry.(type) {
	case Sphere:
		s := math.Max(m.Scale[0], math.Max(m.Scale[1], m.Scale[2]))
		return r.IntersectSphere(m.Position, g.Radius*s)
	case Box, Plane:
		min, max := m.Bounds()
		return r.IntersectBox(min, max)
	}
	return 0, false
}

type Hit struct {
	Mesh     *Mesh
	Distance float64
	Point    Vec3
}

// Raycast returns every target hit by r, nearest first.
func Raycast(r Ray, targets []*Mesh) []Hit {
	var hits []Hit
	for _, m := range targets {
		if t, ok := m.Intersect(r); ok {
			hits = append(hits, Hit{Mesh: m, Distance: t, Point: r.At(t)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
