package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"PongSim/core"
	"PongSim/logger"
	"PongSim/settings"
)

// basicfont's face is 13px tall; DrawText scales it to the requested size.
const faceSize = 13

var face = text.NewGoXFace(basicfont.Face7x13)

var intentKeys = map[ebiten.Key]core.Intent{
	ebiten.KeyW:         core.Paddle1Up,
	ebiten.KeyS:         core.Paddle1Down,
	ebiten.KeyArrowUp:   core.Paddle2Up,
	ebiten.KeyArrowDown: core.Paddle2Down,
}

// Game runs a match inside an ebiten window.
type Game struct {
	match      *core.Match
	settings   settings.Settings
	background color.Color

	snapshot core.Snapshot
}

func NewGame(match *core.Match, s settings.Settings) *Game {
	return &Game{
		match:      match,
		settings:   s,
		background: s.Background,
		snapshot:   match.Snapshot(),
	}
}

// Snapshot is the last simulated frame.
func (g *Game) Snapshot() core.Snapshot {
	return g.snapshot
}

func readInput() core.Input {
	var intents core.Intent
	for key, intent := range intentKeys {
		if ebiten.IsKeyPressed(key) {
			intents |= intent
		}
	}
	return core.Input{
		Intents: intents,
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (g *Game) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}

	dt := 1 / float64(ebiten.TPS())
	g.snapshot = g.match.Update(dt, readInput())
	if g.settings.Trace {
		logger.Log.Trace(fmt.Sprintf(logger.FrameTraceMsg, g.snapshot.MatchID, g.snapshot.Payload()))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.snapshot.Render(canvas{dst: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.snapshot.Width), int(g.snapshot.Height)
}

// canvas draws on one ebiten frame.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) FillRect(x, y, width, height float32) {
	vector.DrawFilledRect(c.dst, x, y, width, height, color.White, false)
}

func (c canvas) DrawText(message string, x, y, size float32) {
	scale := float64(size) / faceSize
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(c.dst, message, face, op)
}

func (c canvas) MeasureText(message string, size float32) float32 {
	return float32(text.Advance(message, face) * float64(size) / faceSize)
}

// Run opens the window and blocks until it is closed.
func Run(match *core.Match, s settings.Settings) (core.Snapshot, error) {
	game := NewGame(match, s)
	cfg := match.Config()

	ebiten.SetWindowSize(int(cfg.Width)*s.WindowScale, int(cfg.Height)*s.WindowScale)
	ebiten.SetWindowTitle("Pong")

	if err := ebiten.RunGame(game); err != nil {
		return game.Snapshot(), fmt.Errorf("run window: %w", err)
	}
	return game.Snapshot(), nil
}
