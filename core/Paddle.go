package core

type Paddle struct {
	X, Y          float32
	Width, Height float32
	DY            float32
	Side          Side

	maxX, maxY float32
}

func NewPaddle(x, y, width, height, maxX, maxY float32, side Side) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Side:   side,
		maxX:   maxX,
		maxY:   maxY,
	}
}

func (p *Paddle) SetVelocity(dy float32) {
	p.DY = dy
}

// Update moves the paddle and clamps it inside [0, maxY-Height].
func (p *Paddle) Update(dt float64) {
	p.Y = p.Y + float32(float64(p.DY)*dt)
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > p.maxY-p.Height {
		p.Y = p.maxY - p.Height
	}
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Paddle) Render(c Canvas) {
	p.Rect().Render(c)
}
