package viz

import (
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.Pixels(); w != 8 || h != 8 {
		t.Fatalf("pixels = %dx%d, want 8x8", w, h)
	}

	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("expected (3,5) set")
	}
	if got := c.Grid[1][1]; got != blank|0x10 {
		t.Errorf("cell = %U, want %U", got, blank|0x10)
	}

	// out of range is ignored
	c.Set(-1, 0)
	c.Set(100, 100)
	if c.IsSet(-1, 0) {
		t.Error("out of range pixel reported set")
	}

	c.Clear()
	if c.IsSet(3, 5) || c.Grid[1][1] != blank {
		t.Error("expected (3,5) cleared")
	}
}

func TestCanvasColorAndText(t *testing.T) {
	c := NewCanvas(6, 1)
	c.SetColor(0, 0, colorful.Color{R: 1})
	if c.Colors[0][0] != "#ff0000" {
		t.Errorf("color = %q", c.Colors[0][0])
	}

	c.PutText(4, 0, "10x")
	if string(c.Text[0][4:]) != "10" {
		t.Errorf("text overlay = %q", string(c.Text[0][4:]))
	}
	out := c.String()
	if !strings.HasSuffix(out, "10\n") {
		t.Errorf("String() = %q", out)
	}

	c.Clear()
	if c.Colors[0][0] != "" || c.Text[0][4] != 0 || c.Grid[0][0] != blank {
		t.Error("clear left state behind")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)
	if !c.IsSet(0, 0) || !c.IsSet(19, 19) {
		t.Error("expected both endpoints set")
	}
	c.DrawLineColor(0, 10, 19, 10, colorful.Color{B: 1})
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 10) {
			t.Fatalf("horizontal line missing pixel %d", x)
		}
	}
	if c.Colors[2][9] != "#0000ff" {
		t.Errorf("line color = %q", c.Colors[2][9])
	}
}
