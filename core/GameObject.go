package core

// Canvas is the drawing surface a frontend hands to the game objects.
// Coordinates are playfield units, text size is in points.
type Canvas interface {
	FillRect(x, y, width, height float32)
	DrawText(text string, x, y, size float32)
	MeasureText(text string, size float32) float32
}

type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Render(c Canvas) {
	c.FillRect(r.X, r.Y, r.Width, r.Height)
}

// Overlaps is an inclusive AABB test.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.Width &&
		r.X+r.Width >= o.X &&
		r.Y <= o.Y+o.Height &&
		r.Y+r.Height >= o.Y
}
