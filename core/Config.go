package core

// Config holds the playfield and physics constants of a match.
// They are fixed for the lifetime of a match.
type Config struct {
	Width  float32
	Height float32

	PaddleWidth  float32
	PaddleHeight float32
	PaddleInset  float32 // 球拍離左右邊界的距離
	PaddleSpeed  float32

	BallSize float32

	ServeSpeed       float32
	ServeSpreadMin   float32
	ServeSpreadMax   float32
	ServeSpreadScale float32

	HitAmplify float32
	HitNudge   float32
	DeflectMin float32
	DeflectMax float32
}

func DefaultConfig() Config {
	return Config{
		Width:  412,
		Height: 240,

		PaddleWidth:  5,
		PaddleHeight: 20,
		PaddleInset:  10,
		PaddleSpeed:  200,

		BallSize: 4,

		ServeSpeed:       100,
		ServeSpreadMin:   -50,
		ServeSpreadMax:   50,
		ServeSpreadScale: 1.5,

		HitAmplify: 1.03,
		HitNudge:   1.3,
		DeflectMin: 10,
		DeflectMax: 150,
	}
}
