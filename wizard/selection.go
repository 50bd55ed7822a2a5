package wizard

import (
	"context"
)

// Select shows a single-select menu and returns the value of the chosen
// entry. Invalid choices or initial index fail before anything is drawn.
func Select[T any](ctx context.Context, prompter *Prompter, message string, choices []Choice[T], initial int) (T, error) {
	var zero T
	if err := checkChoices(message, len(choices), initial); err != nil {
		return zero, err
	}
	if prompter.AcceptDefaults {
		return choices[initial].Value, nil
	}
	menu, err := NewMenu(prompter.terminal, choices, initial)
	if err != nil {
		return zero, err
	}
	return menu.Run(ctx, message)
}
