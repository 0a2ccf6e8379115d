package main

import (
	"PongSim/core"
	"PongSim/settings"
	"PongSim/window"
)

func runWindow(match *core.Match, s settings.Settings) (core.Snapshot, error) {
	return window.Run(match, s)
}
