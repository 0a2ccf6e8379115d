package core

// scriptedRandom replays fixed draws so serves and deflections are predictable.
// Once a script runs out its last value repeats.
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

type drawCall struct {
	kind string
	text string
	x, y float32
	w, h float32
	size float32
}

// recordingCanvas keeps every draw call; text is one unit wide per rune per point.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) FillRect(x, y, width, height float32) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: width, h: height})
}

func (c *recordingCanvas) DrawText(text string, x, y, size float32) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, x: x, y: y, size: size})
}

func (c *recordingCanvas) MeasureText(text string, size float32) float32 {
	return float32(len(text)) * size / 2
}

func (c *recordingCanvas) ofKind(kind string) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.kind == kind {
			out = append(out, call)
		}
	}
	return out
}
