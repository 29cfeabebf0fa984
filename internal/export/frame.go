package export

import (
	"github.com/san-kum/bars3d/internal/session"
	"github.com/san-kum/bars3d/internal/viz"
)

// Render sizes the session to a cols×rows braille canvas and draws its
// current state without advancing the animation.
func Render(s *session.Session, cols, rows int) (*viz.Canvas, error) {
	c := viz.NewCanvas(cols, rows)
	s.SetRenderer(viz.NewRenderer(c))
	w, h := c.Pixels()
	s.Resize(float64(w), float64(h))
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}
