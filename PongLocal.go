package main

import (
	"fmt"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"

	"PongSim/client"
	"PongSim/core"
	"PongSim/settings"
)

func initScreen() (tcell.Screen, error) {
	encoding.Register()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if e := screen.Init(); e != nil {
		return nil, fmt.Errorf("init screen: %w", e)
	}
	return screen, nil
}

// runTerminal plays both paddles on one keyboard in the terminal.
func runTerminal(match *core.Match, s settings.Settings) (core.Snapshot, error) {
	screen, err := initScreen()
	if err != nil {
		return core.Snapshot{}, err
	}
	defer screen.Fini()

	return client.Run(screen, match, s), nil
}
