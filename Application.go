package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/afero"

	"PongSim/core"
	"PongSim/logger"
	"PongSim/settings"
)

func main() {
	fs := afero.NewOsFs()

	s, err := settings.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if _, err := logger.Log.Init(fs, "./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.Info(fmt.Sprintf(logger.SettingsLoadedMsg, s.ConfigFile, s.Frontend, s.FrameInterval))

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	match := core.NewMatch(core.DefaultConfig(), rand.New(rand.NewSource(seed)))
	logger.Log.Info(fmt.Sprintf(logger.FrontendStartMsg, match.ID, s.Frontend))

	var final core.Snapshot
	switch s.Frontend {
	case settings.FrontendWindow:
		final, err = runWindow(match, s)
	default:
		final, err = runTerminal(match, s)
	}
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger.Log.Info(fmt.Sprintf(logger.FrontendStopMsg, final.MatchID, final.LeftScore, final.RightScore))
}
