package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Just-a-Unity-Dev/aeros/internal/input"
)

// Keyboard reads player intents from the terminal.
type Keyboard struct {
	screen *Screen
}

// NewKeyboard creates an input source bound to the screen.
func NewKeyboard(screen *Screen) *Keyboard {
	return &Keyboard{screen: screen}
}

// Next blocks for one terminal event and translates it.
func (k *Keyboard) Next() input.Intent {
	switch ev := k.screen.PollEvent().(type) {
	case nil:
		// Screen finalized underneath us.
		return input.Intent{Kind: input.Quit}
	case *tcell.EventKey:
		return translateKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		k.screen.Sync()
		return input.Intent{Kind: input.Redraw}
	default:
		return input.Intent{Kind: input.None}
	}
}

// translateKey maps a key press to an intent.
// Arrows and vi keys move; Esc, Ctrl-C and q quit; Tab and Alt+Enter toggle the log.
func translateKey(key tcell.Key, r rune, mod tcell.ModMask) input.Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Intent{Kind: input.Quit}
	case tcell.KeyTab:
		return input.Intent{Kind: input.ToggleLog}
	case tcell.KeyEnter:
		if mod&tcell.ModAlt != 0 {
			return input.Intent{Kind: input.ToggleLog}
		}
	case tcell.KeyUp:
		return input.Direction(0, -1)
	case tcell.KeyDown:
		return input.Direction(0, 1)
	case tcell.KeyLeft:
		return input.Direction(-1, 0)
	case tcell.KeyRight:
		return input.Direction(1, 0)
	case tcell.KeyRune:
		return translateRune(r)
	}
	return input.Intent{Kind: input.None}
}

func translateRune(r rune) input.Intent {
	switch r {
	case 'q', 'Q':
		return input.Intent{Kind: input.Quit}
	case 'k':
		return input.Direction(0, -1)
	case 'j':
		return input.Direction(0, 1)
	case 'h':
		return input.Direction(-1, 0)
	case 'l':
		return input.Direction(1, 0)
	case 'y':
		return input.Direction(-1, -1)
	case 'u':
		return input.Direction(1, -1)
	case 'b':
		return input.Direction(-1, 1)
	case 'n':
		return input.Direction(1, 1)
	}
	return input.Intent{Kind: input.None}
}
