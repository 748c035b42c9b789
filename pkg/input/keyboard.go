package input

import (
	"github.com/eiannone/keyboard"

	"github.com/trytobebee/termsnake/pkg/game"
)

// KeyboardHandler captures raw key events on a background goroutine
// and hands them to the game loop over a channel, so the loop stays
// the single writer of game state.
type KeyboardHandler struct {
	events chan KeyInput
}

// KeyInput is one raw keyboard event.
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates an idle handler; call Start to begin
// capturing keys.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		events: make(chan KeyInput),
	}
}

// Start puts the terminal in raw key mode and begins forwarding key
// events. The goroutine exits when the keyboard is closed by Stop.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.events <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop restores the terminal.
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Events returns the stream of captured key events.
func (h *KeyboardHandler) Events() <-chan KeyInput {
	return h.events
}

// ParseCommand maps a key event to a game input. Arrow keys and WASD
// steer, p or space toggles pause, q / Esc / Ctrl-C quit. Anything
// else is game.InputNone.
func ParseCommand(in KeyInput) game.Input {
	switch in.Key {
	case keyboard.KeyArrowUp:
		return game.InputUp
	case keyboard.KeyArrowDown:
		return game.InputDown
	case keyboard.KeyArrowLeft:
		return game.InputLeft
	case keyboard.KeyArrowRight:
		return game.InputRight
	case keyboard.KeySpace:
		return game.InputPause
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return game.InputQuit
	}

	switch in.Char {
	case 'w', 'W':
		return game.InputUp
	case 's', 'S':
		return game.InputDown
	case 'a', 'A':
		return game.InputLeft
	case 'd', 'D':
		return game.InputRight
	case 'p', 'P', ' ':
		return game.InputPause
	case 'q', 'Q':
		return game.InputQuit
	}

	return game.InputNone
}

// IsRestart checks for the restart key. Restarting is a loop concern:
// a finished game is torn down and a fresh one constructed.
func IsRestart(in KeyInput) bool {
	return in.Char == 'r' || in.Char == 'R'
}
