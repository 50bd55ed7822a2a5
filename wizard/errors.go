package wizard

import (
	"errors"

	"github.com/joshyorko/prompter/pretty"
)

var (
	// ErrInvalidArgument marks unusable prompt definitions: no choices, an
	// initial index out of range, duplicate step names or unparsable seeds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownStep is returned for a step type the orchestrator cannot
	// dispatch. Well formed configurations never produce it.
	ErrUnknownStep = errors.New("unknown step type")

	// ErrInterrupted is returned when the user presses Ctrl+C while a menu
	// owns the keyboard.
	ErrInterrupted = errors.New("interrupted")

	ErrNotInteractive = pretty.ErrNotInteractive
)

// ValidationError carries the message of a failed validator.
type ValidationError struct {
	Message string
}

func (it *ValidationError) Error() string {
	return it.Message
}
