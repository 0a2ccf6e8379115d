package core

import "strconv"

const (
	MessageSize = 12
	ScoreSize   = 40
)

// Snapshot is a copy of one frame. Frontends only ever draw snapshots.
type Snapshot struct {
	MatchID       string
	Width, Height float32

	Left, Right Rect
	Ball        Rect

	LeftScore  int
	RightScore int
	State      State

	// Conceded is the side the ball left through this frame, None otherwise.
	Conceded Side
}

func (s Snapshot) Message() string {
	return "Hello " + s.State.String() + " state"
}

func (s Snapshot) Render(c Canvas) {
	message := s.Message()
	span := c.MeasureText(message, MessageSize)
	c.DrawText(message, (s.Width-span)/2, 20, MessageSize)

	s.Left.Render(c)
	s.Right.Render(c)
	s.Ball.Render(c)

	//開始畫面才顯示分數
	if s.State == Start {
		c.DrawText(strconv.Itoa(s.LeftScore), s.Width/2-50, s.Height/3, ScoreSize)
		c.DrawText(strconv.Itoa(s.RightScore), s.Width/2+30, s.Height/3, ScoreSize)
	}
}
