package core

import (
	"fmt"

	"github.com/google/uuid"

	"PongSim/logger"
)

// Match owns both paddles, the ball and the score, and gates the ball on State.
type Match struct {
	ID string

	Left  *Paddle
	Right *Paddle
	Ball  *Ball

	LeftScore  int
	RightScore int
	State      State

	cfg Config
}

func NewMatch(cfg Config, rng RandomSource) *Match {
	paddleStart := (cfg.Height - cfg.PaddleHeight) / 2

	m := &Match{
		ID: uuid.NewString(),
		Left: NewPaddle(cfg.PaddleInset, paddleStart, cfg.PaddleWidth, cfg.PaddleHeight,
			cfg.Width, cfg.Height, Left),
		Right: NewPaddle(cfg.Width-cfg.PaddleInset, paddleStart, cfg.PaddleWidth, cfg.PaddleHeight,
			cfg.Width, cfg.Height, Right),
		Ball: NewBall((cfg.Width-cfg.BallSize)/2, (cfg.Height-cfg.BallSize)/2,
			cfg.BallSize, cfg.BallSize, cfg, rng),
		State: Start,
		cfg:   cfg,
	}

	logger.Log.Debug(fmt.Sprintf(logger.MatchCreatedMsg, m.ID, m.Ball.DX, m.Ball.DY))
	return m
}

func (m *Match) Config() Config {
	return m.cfg
}

// Toggle flips between Start and Play.
func (m *Match) Toggle() {
	m.State = m.State.Toggle()
	logger.Log.Debug(fmt.Sprintf(logger.StateChangedMsg, m.ID, m.State))
}

// Update advances the match by dt seconds and returns what to draw.
// A confirm edge is applied before anything moves.
func (m *Match) Update(dt float64, input Input) Snapshot {
	if input.Confirm {
		m.Toggle()
	}

	speed := m.cfg.PaddleSpeed
	m.Left.SetVelocity(paddleVelocity(input.Intents, Paddle1Up, Paddle1Down, speed))
	m.Right.SetVelocity(paddleVelocity(input.Intents, Paddle2Up, Paddle2Down, speed))

	//兩個球拍，不論狀態都會移動
	m.Left.Update(dt)
	m.Right.Update(dt)

	conceded := None
	if m.State == Play {
		conceded = m.play(dt)
	}

	return m.snapshot(conceded)
}

func (m *Match) play(dt float64) Side {
	ball := m.Ball
	ball.Update(dt)

	//檢查是否有碰到球拍
	ball.Collides(m.Left)
	ball.Collides(m.Right)

	//檢查有沒有撞到上下牆壁
	ball.Bounce(m.cfg.Height)

	out := ball.CheckOut(m.cfg.Width)
	switch out {
	case Left:
		m.RightScore += 1
	case Right:
		m.LeftScore += 1
	default:
		return None
	}

	ball.Reset(m.cfg.Width, m.cfg.Height, out)
	logger.Log.Debug(fmt.Sprintf(logger.PointScoredMsg, m.ID, out, m.LeftScore, m.RightScore))
	return out
}

func (m *Match) Snapshot() Snapshot {
	return m.snapshot(None)
}

func (m *Match) snapshot(conceded Side) Snapshot {
	return Snapshot{
		MatchID:    m.ID,
		Width:      m.cfg.Width,
		Height:     m.cfg.Height,
		Left:       m.Left.Rect(),
		Right:      m.Right.Rect(),
		Ball:       m.Ball.Rect(),
		LeftScore:  m.LeftScore,
		RightScore: m.RightScore,
		State:      m.State,
		Conceded:   conceded,
	}
}
