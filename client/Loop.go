package client

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"PongSim/core"
	"PongSim/logger"
	"PongSim/settings"
)

// Run plays match on screen until a quit key and returns the last frame.
// The caller owns the screen and finalizes it.
func Run(screen tcell.Screen, match *core.Match, s settings.Settings) core.Snapshot {
	cfg := match.Config()
	terminal := NewTerminal(screen, cfg.Width, cfg.Height, s.Background)

	keyboard := NewKeyboard(s.KeyHold)
	keyboard.Listen(screen)
	defer keyboard.Stop()

	snapshot := match.Snapshot()
	terminal.Frame(snapshot)

	last := time.Now()
	for {
		time.Sleep(s.FrameInterval)

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		input := keyboard.Poll(now)
		if keyboard.Resized() {
			cols, rows := terminal.Resize()
			screen.Sync()
			logger.Log.Info(fmt.Sprintf(logger.ScreenResizeMsg, cols, rows))
		}

		snapshot = match.Update(dt, input)
		if s.Trace {
			logger.Log.Trace(fmt.Sprintf(logger.FrameTraceMsg, snapshot.MatchID, snapshot.Payload()))
		}
		terminal.Frame(snapshot)

		if keyboard.Quit() {
			return snapshot
		}
	}
}
