package wizard

import (
	"github.com/joshyorko/prompter/pretty"
)

// Prompter asks questions on one terminal. Only one prompt at a time may
// use the terminal; a Prompter is not safe for concurrent use.
type Prompter struct {
	terminal pretty.Terminal

	// AcceptDefaults resolves every prompt to its initial value without
	// touching the terminal. Validators still run.
	AcceptDefaults bool
}

func New(terminal pretty.Terminal) *Prompter {
	return &Prompter{terminal: terminal}
}

func (it *Prompter) Terminal() pretty.Terminal {
	return it.terminal
}

func question(message, initial string) string {
	text := pretty.Accent("?") + " " + message
	if len(initial) > 0 {
		text += " " + pretty.Caption("("+initial+")")
	}
	return text + " "
}
