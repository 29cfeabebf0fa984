package anim

import (
	"context"
	"time"

	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/scene"
)

// Controls is updated once per frame after the animation step, before
// labels are projected.
type Controls interface {
	Update() bool
}

// Renderer presents a frame. Hosts that draw outside the tick leave it nil.
type Renderer interface {
	Render(sc *scene.Scene, cam *scene.Camera) error
}

// Frame is one scene's per-tick pipeline.
type Frame struct {
	Chart     *chart.Chart
	Scene     *scene.Scene
	Camera    *scene.Camera
	Driver    *Driver // nil disables animation
	Controls  Controls
	Projector *Projector
	Renderer  Renderer
	count     int
}

// Tick runs one frame: animate, update controls, project labels, render.
func (f *Frame) Tick() error {
	f.count++
	if f.Driver != nil {
		f.Driver.Advance(f.Chart)
	}
	if f.Controls != nil {
		f.Controls.Update()
	}
	if f.Projector != nil {
		f.Projector.Update(f.Chart)
	}
	if f.Renderer != nil {
		return f.Renderer.Render(f.Scene, f.Camera)
	}
	return nil
}

// Count is the number of ticks run so far.
func (f *Frame) Count() int { return f.count }

// Loop calls tick every interval until ctx is done or tick fails.
func Loop(ctx context.Context, interval time.Duration, tick func() error) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := tick(); err != nil {
				return err
			}
		}
	}
}
