package client

import (
	"time"

	"github.com/gdamore/tcell"

	"PongSim/core"
)

const resizeKey = "Resize"

var intentKeys = map[string]core.Intent{
	"Rune[w]": core.Paddle1Up,
	"Rune[W]": core.Paddle1Up,
	"Rune[s]": core.Paddle1Down,
	"Rune[S]": core.Paddle1Down,
	"Up":      core.Paddle2Up,
	"Down":    core.Paddle2Down,
}

var quitKeys = map[string]bool{
	"Esc":     true,
	"Rune[q]": true,
	"Rune[Q]": true,
	"Ctrl+C":  true,
	"Ctrl-C":  true,
}

// Keyboard turns tcell key events into per-frame intents.
// Terminals never report a key release, so a key counts as held
// for a while after its last press or auto-repeat.
type Keyboard struct {
	keys chan string
	done chan struct{}
	hold time.Duration

	lastSeen map[core.Intent]time.Time
	confirm  bool
	quit     bool
	resized  bool
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		keys:     make(chan string, 64),
		done:     make(chan struct{}),
		hold:     hold,
		lastSeen: make(map[core.Intent]time.Time),
	}
}

// Listen starts a goroutine that forwards screen events until Stop or screen.Fini.
func (k *Keyboard) Listen(screen tcell.Screen) {
	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			var name string
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				name = resizeKey
			case *tcell.EventKey:
				name = ev.Name()
			default:
				continue
			}

			select {
			case k.keys <- name:
			case <-k.done:
				return
			}
		}
	}()
}

func (k *Keyboard) Stop() {
	close(k.done)
}

// Poll drains pending keys without blocking and returns the input for this frame.
func (k *Keyboard) Poll(now time.Time) core.Input {
	for {
		select {
		case key := <-k.keys:
			k.handle(key, now)
		default:
			return k.input(now)
		}
	}
}

func (k *Keyboard) handle(key string, now time.Time) {
	if intent, ok := intentKeys[key]; ok {
		k.lastSeen[intent] = now
		return
	}
	if quitKeys[key] {
		k.quit = true
		return
	}

	switch key {
	case "Enter":
		k.confirm = true
	case resizeKey:
		k.resized = true
	}
}

func (k *Keyboard) input(now time.Time) core.Input {
	var intents core.Intent
	for intent, seen := range k.lastSeen {
		if now.Sub(seen) <= k.hold {
			intents |= intent
		}
	}

	input := core.Input{Intents: intents, Confirm: k.confirm}
	k.confirm = false
	return input
}

func (k *Keyboard) Quit() bool {
	return k.quit
}

// Resized reports whether the screen changed size since the last call.
func (k *Keyboard) Resized() bool {
	resized := k.resized
	k.resized = false
	return resized
}
