package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/joshyorko/prompter/pretty"
)

// KeyMap binds menu actions to keys. Bindings are matched against the
// symbolic names produced by pretty.Key.String.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// hint summarises the bindings next to the menu question.
func (k KeyMap) hint() string {
	parts := make([]string, 0, 4)
	for _, binding := range k.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, ", ")
}

type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionSelect
	actionQuit
)

func (k KeyMap) action(pressed pretty.Key) action {
	switch {
	case key.Matches(pressed, k.Up):
		return actionUp
	case key.Matches(pressed, k.Down):
		return actionDown
	case key.Matches(pressed, k.Select):
		return actionSelect
	case key.Matches(pressed, k.Quit):
		return actionQuit
	}
	return actionNone
}
