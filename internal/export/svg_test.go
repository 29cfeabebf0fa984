package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/config"
	"github.com/san-kum/bars3d/internal/logx"
	"github.com/san-kum/bars3d/internal/session"
	"github.com/san-kum/bars3d/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.SetColor(3, 3, colorful.Color{R: 1})
	labels := []*chart.Label{{Text: "<7>", X: 2, Y: 4}}

	svg := CanvasToSVG(c, labels, 10)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("colored cell lost its color")
	}
	if !strings.Contains(svg, `<text x="20.0" y="40.0">&lt;7&gt;</text>`) {
		t.Errorf("label missing or unescaped:\n%s", svg)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Error("unexpected document size")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, nil, 1) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestRenderAndSave(t *testing.T) {
	s, err := session.New(config.DefaultConfig(), session.WithLogger(logx.Discard()))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	c, err := Render(s, 60, 30)
	if err != nil {
		t.Fatal(err)
	}
	if s.Viewport.Width != 120 || s.Viewport.Height != 120 {
		t.Errorf("viewport = %vx%v", s.Viewport.Width, s.Viewport.Height)
	}
	if s.Frames() != 1 {
		t.Errorf("render advanced the animation to frame %d", s.Frames())
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, c, s.Chart.Labels, 4); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "<text"); got != len(s.Chart.Labels) {
		t.Errorf("text elements = %d, want %d", got, len(s.Chart.Labels))
	}
	if !strings.Contains(buf.String(), "<circle") {
		t.Error("expected drawn dots")
	}

	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := SaveSVG(path, c, s.Chart.Labels, 4); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("saved file differs from written document")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single value should not plot")
	}
	svg := SeriesToSVG([]float64{1, 2, 3}, 100, 50, "#00ffff")
	if !strings.Contains(svg, `stroke="#00ffff"`) || strings.Count(svg, " L") != 2 {
		t.Errorf("unexpected path:\n%s", svg)
	}
	if !strings.Contains(svg, "M0.0,") {
		t.Error("path should start at x=0")
	}
}
