package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBall(rng RandomSource) *Ball {
	return NewBall(204, 118, 4, 4, DefaultConfig(), rng)
}

func TestNewBallServe(t *testing.T) {
	ball := newTestBall(&scriptedRandom{ints: []int{1}, floats: []float64{0.75}})

	assert.Equal(t, float32(204), ball.X)
	assert.Equal(t, float32(118), ball.Y)
	assert.Equal(t, float32(100), ball.DX, "Intn(2) == 1 should serve to the right")
	assert.Equal(t, float32(37.5), ball.DY, "DY should be the spread draw scaled by 1.5")

	ball = newTestBall(&scriptedRandom{ints: []int{0}, floats: []float64{0}})
	assert.Equal(t, float32(-100), ball.DX, "Intn(2) == 0 should serve to the left")
	assert.Equal(t, float32(-75), ball.DY, "lowest spread draw should be -50 * 1.5")
}

func TestBallUpdate(t *testing.T) {
	ball := newTestBall(&scriptedRandom{})
	ball.DX = 100
	ball.DY = -50

	ball.Update(0.5)

	assert.InDelta(t, 254, ball.X, 1e-4)
	assert.InDelta(t, 93, ball.Y, 1e-4)
}

func TestBallBounce(t *testing.T) {
	ball := newTestBall(&scriptedRandom{})
	ball.DY = 30

	ball.Y = 120
	ball.Bounce(240)
	assert.Equal(t, float32(30), ball.DY, "Ball inside the playfield should not bounce")

	ball.Y = 0
	ball.Bounce(240)
	assert.Equal(t, float32(-30), ball.DY, "Ball on the top wall should bounce")

	ball.Y = 240
	ball.Bounce(240)
	assert.Equal(t, float32(30), ball.DY, "Ball on the bottom wall should bounce")

	ball.Y = -3
	ball.Bounce(240)
	ball.Bounce(240)
	assert.Equal(t, float32(30), ball.DY, "Bouncing twice without moving should restore the sign")
}

func TestBallCheckOut(t *testing.T) {
	ball := newTestBall(&scriptedRandom{})

	cases := []struct {
		x    float32
		want Side
	}{
		{-1000, Left},
		{-5, Left},
		{-4, Left},
		{-3.99, None},
		{0, None},
		{206, None},
		{412, None},
		{412.01, Right},
		{5000, Right},
	}
	for _, c := range cases {
		ball.X = c.x
		assert.Equal(t, c.want, ball.CheckOut(412), "x=%v", c.x)
	}
}

func TestBallResetTowardsConcedingSide(t *testing.T) {
	ball := newTestBall(&scriptedRandom{ints: []int{1}, floats: []float64{0.25}})
	ball.X, ball.Y = -30, 17

	ball.Reset(412, 240, Left)
	assert.Equal(t, float32(204), ball.X, "Ball should be recentred horizontally")
	assert.Equal(t, float32(118), ball.Y, "Ball should be recentred vertically")
	assert.Equal(t, float32(-100), ball.DX, "Ball should serve towards the left after leaving left")
	assert.Equal(t, float32(-37.5), ball.DY)

	ball.Reset(412, 240, Right)
	assert.Equal(t, float32(100), ball.DX, "Ball should serve towards the right after leaving right")
}

func TestBallResetRandomServe(t *testing.T) {
	ball := newTestBall(rand.New(rand.NewSource(1)))

	seen := map[bool]bool{}
	for i := 0; i < 200; i++ {
		ball.Reset(412, 240, None)
		assert.Equal(t, float32(100), abs32(ball.DX), "serve speed should be the base speed")
		assert.GreaterOrEqual(t, ball.DY, float32(-75))
		assert.LessOrEqual(t, ball.DY, float32(75))
		seen[ball.DX > 0] = true
	}
	assert.True(t, seen[true] && seen[false], "random serves should go both ways")
}

func TestBallCollidesLeftPaddle(t *testing.T) {
	paddle := NewPaddle(10, 100, 5, 20, 412, 240, Left)
	ball := newTestBall(&scriptedRandom{floats: []float64{0.5}})
	ball.X, ball.Y = 14, 105
	ball.DX, ball.DY = -100, -30

	hit := ball.Collides(paddle)

	assert.True(t, hit)
	assert.InDelta(t, 103, ball.DX, 1e-3, "DX should flip and grow by 3%")
	assert.InDelta(t, 20.5, ball.X, 1e-4, "Ball should be pushed right of a left paddle")
	assert.Equal(t, float32(-80), ball.DY, "DY should keep its sign with a fresh steepness")
}

func TestBallCollidesRightPaddle(t *testing.T) {
	paddle := NewPaddle(402, 100, 5, 20, 412, 240, Right)
	ball := newTestBall(&scriptedRandom{floats: []float64{0}})
	ball.X, ball.Y = 399, 119
	ball.DX, ball.DY = 150, 12

	hit := ball.Collides(paddle)

	assert.True(t, hit)
	assert.Less(t, ball.DX, float32(0))
	assert.Greater(t, abs32(ball.DX), float32(150), "speed should be amplified on every hit")
	assert.InDelta(t, 392.5, ball.X, 1e-4, "Ball should be pushed left of a right paddle")
	assert.Equal(t, float32(10), ball.DY)
}

func TestBallCollidesMiss(t *testing.T) {
	paddle := NewPaddle(10, 100, 5, 20, 412, 240, Left)
	ball := newTestBall(&scriptedRandom{})
	ball.X, ball.Y = 15.5, 105
	ball.DX, ball.DY = -100, 20

	hit := ball.Collides(paddle)

	assert.False(t, hit)
	assert.Equal(t, float32(-100), ball.DX)
	assert.Equal(t, float32(20), ball.DY)
	assert.Equal(t, float32(15.5), ball.X)
}

func TestBallCollidesEdgesAreInclusive(t *testing.T) {
	paddle := NewPaddle(10, 100, 5, 20, 412, 240, Left)
	ball := newTestBall(&scriptedRandom{})

	// Ball's right edge exactly on the paddle's left edge, bottom edge on its top edge.
	ball.X, ball.Y = 6, 96
	ball.DX = 100

	assert.True(t, ball.Collides(paddle))
	assert.Less(t, ball.DX, float32(0))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
