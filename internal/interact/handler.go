// Package interact dispatches pointer presses to scene objects.
package interact

import (
	"fmt"

	"github.com/san-kum/bars3d/internal/scene"
)

// Clickable is implemented by objects that react to being picked.
type Clickable interface {
	OnHit()
}

type Kind int

const (
	Miss Kind = iota
	Hit
	Ignored // nearest object is not clickable
)

func (k Kind) String() string {
	switch k {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Ignored:
		return "ignored"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Result struct {
	Kind     Kind
	Mesh     *scene.Mesh
	Target   Clickable
	Distance float64
}

// Handler casts a ray through a pointer position and calls OnHit on the
// nearest target, or onMiss when nothing is under the pointer.
type Handler struct {
	camera   *scene.Camera
	viewport *scene.Viewport
	targets  func() []*scene.Mesh
	onMiss   func()
}

func NewHandler(cam *scene.Camera, vp *scene.Viewport, targets func() []*scene.Mesh, onMiss func()) *Handler {
	return &Handler{camera: cam, viewport: vp, targets: targets, onMiss: onMiss}
}

// PointerDown handles a press at pixel (x, y). There is no queueing or
// debouncing; every call is one synchronous hit test.
func (h *Handler) PointerDown(x, y float64) Result {
	nx, ny := h.viewport.ToNDC(x, y)
	hits := scene.Raycast(h.camera.RayFromNDC(nx, ny), h.targets())
	if len(hits) == 0 {
		if h.onMiss != nil {
			h.onMiss()
		}
		return Result{Kind: Miss}
	}
	near := hits[0]
	c, ok := near.Mesh.Owner.(Clickable)
	if !ok {
		return Result{Kind: Ignored, Mesh: near.Mesh, Distance: near.Distance}
	}
	c.OnHit()
	return Result{Kind: Hit, Mesh: near.Mesh, Target: c, Distance: near.Distance}
}
