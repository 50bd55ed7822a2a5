package wizard

import (
	"context"
	"strings"
)

// Text asks for one line. An empty reply yields initial. A failing
// validator ends the prompt with a *ValidationError; nothing is re-asked.
func (it *Prompter) Text(ctx context.Context, message, initial string, validate Validator) (string, error) {
	answer := initial
	if !it.AcceptDefaults {
		it.terminal.Write(question(message, initial))
		reply, err := it.terminal.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if len(reply) > 0 {
			answer = reply
		}
	}
	if validate != nil {
		if message := validate(answer); len(message) > 0 {
			return "", &ValidationError{Message: message}
		}
	}
	return answer, nil
}

// Confirm asks a yes/no question. Any answer starting with "y" (ignoring
// case and surrounding blanks) is a yes.
func (it *Prompter) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	if it.AcceptDefaults {
		return initial, nil
	}
	fallback := "n"
	if initial {
		fallback = "y"
	}
	answer, err := it.Text(ctx, message+" (y/n)", fallback, nil)
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
