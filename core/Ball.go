package core

type Ball struct {
	X, Y          float32
	Width, Height float32
	DX, DY        float32

	cfg Config
	rng RandomSource
}

// NewBall places a ball at (x, y) with a random serve in either direction.
func NewBall(x, y, width, height float32, cfg Config, rng RandomSource) *Ball {
	b := &Ball{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		cfg:    cfg,
		rng:    rng,
	}
	b.DX = b.serveSpeed(None)
	b.DY = b.serveSpread()
	return b
}

// serveSpeed picks the horizontal serve velocity. Only an unknown side is random.
func (b *Ball) serveSpeed(direction Side) float32 {
	switch direction {
	case Left:
		return -b.cfg.ServeSpeed
	case Right:
		return b.cfg.ServeSpeed
	}
	if b.rng.Intn(2) == 1 {
		return b.cfg.ServeSpeed
	}
	return -b.cfg.ServeSpeed
}

func (b *Ball) serveSpread() float32 {
	return between(b.rng, b.cfg.ServeSpreadMin, b.cfg.ServeSpreadMax) * b.cfg.ServeSpreadScale
}

// Reset recentres the ball and serves it towards direction.
func (b *Ball) Reset(screenWidth, screenHeight float32, direction Side) {
	b.X = (screenWidth - b.Width) / 2
	b.Y = (screenHeight - b.Height) / 2
	b.DX = b.serveSpeed(direction)
	b.DY = b.serveSpread()
}

func (b *Ball) Update(dt float64) {
	b.X = b.X + float32(float64(b.DX)*dt)
	b.Y = b.Y + float32(float64(b.DY)*dt)
}

// Bounce flips DY whenever the ball touches the top or bottom wall.
func (b *Ball) Bounce(maxY float32) {
	if b.Y <= 0 || b.Y >= maxY {
		b.DY = -b.DY
	}
}

// Collides deflects the ball off paddle when their boxes overlap and reports whether they did.
func (b *Ball) Collides(paddle *Paddle) bool {
	if !b.Rect().Overlaps(paddle.Rect()) {
		return false
	}

	b.DX = -b.DX * b.cfg.HitAmplify

	//把球推出球拍外，避免下一幀又撞到
	switch paddle.Side {
	case Left:
		b.X = b.X + paddle.Width*b.cfg.HitNudge
	case Right:
		b.X = b.X - paddle.Width*b.cfg.HitNudge
	}

	steepness := between(b.rng, b.cfg.DeflectMin, b.cfg.DeflectMax)
	if b.DY < 0 {
		b.DY = -steepness
	} else {
		b.DY = steepness
	}
	return true
}

// CheckOut reports which side the ball has fully left through, if any.
func (b *Ball) CheckOut(maxX float32) Side {
	if b.X <= -b.Width {
		return Left
	} else if b.X > maxX {
		return Right
	}
	return None
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Ball) Render(c Canvas) {
	b.Rect().Render(c)
}
