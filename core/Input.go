package core

type Intent uint8

const (
	Paddle1Up Intent = 1 << iota
	Paddle1Down
	Paddle2Up
	Paddle2Down
)

func (i Intent) Has(intent Intent) bool {
	return i&intent != 0
}

// Input is what a frontend collected for one frame.
// Confirm is an edge: set only on the frame the confirm key went down.
type Input struct {
	Intents Intent
	Confirm bool
}

// paddleVelocity maps a pair of intents to a vertical velocity.
// When both are held, up wins.
func paddleVelocity(intents Intent, up, down Intent, speed float32) float32 {
	if intents.Has(up) {
		return -speed
	} else if intents.Has(down) {
		return speed
	}
	return 0
}
