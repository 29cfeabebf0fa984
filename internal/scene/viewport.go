package scene

// Viewport is the drawable surface size in pixels.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// ToPixel maps normalized device coordinates to pixel coordinates with the
// origin at the top-left corner. Points outside [-1, 1] land off-surface.
func (v Viewport) ToPixel(ndc Vec3) (float64, float64) {
	x := (ndc.X()*0.5 + 0.5) * v.Width
	y := (-ndc.Y()*0.5 + 0.5) * v.Height
	return x, y
}

// ToNDC is the inverse of ToPixel for the x/y plane.
func (v Viewport) ToNDC(x, y float64) (float64, float64) {
	return x/v.Width*2 - 1, -(y/v.Height)*2 + 1
}
