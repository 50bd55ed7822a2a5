package wizard

import (
	"fmt"
	"strings"
)

// Step is one question of a sequence. The set of step kinds is closed:
// TextStep, SelectStep and ConfirmStep.
type Step interface {
	StepName() string
	StepMessage() string
	seeded(value string) (Step, error)
}

// TextStep asks for a free form line.
type TextStep struct {
	Name      string
	Message   string
	Initial   string
	Validate  Validator
	Transform func(string) string
}

// SelectStep asks to pick one of Choices; Initial is the index selected
// when the menu opens.
type SelectStep struct {
	Name    string
	Message string
	Choices []Choice[any]
	Initial int
}

// ConfirmStep asks a yes/no question.
type ConfirmStep struct {
	Name    string
	Message string
	Initial bool
}

func (it TextStep) StepName() string      { return it.Name }
func (it TextStep) StepMessage() string   { return it.Message }
func (it SelectStep) StepName() string    { return it.Name }
func (it SelectStep) StepMessage() string { return it.Message }
func (it ConfirmStep) StepName() string   { return it.Name }
func (it ConfirmStep) StepMessage() string {
	return it.Message
}

func (it TextStep) seeded(value string) (Step, error) {
	it.Initial = value
	return it, nil
}

func (it SelectStep) seeded(value string) (Step, error) {
	at, ok := indexOf(it.Choices, value)
	if !ok {
		titles := make([]string, 0, len(it.Choices))
		for _, choice := range it.Choices {
			titles = append(titles, choice.Title)
		}
		return nil, fmt.Errorf("%w: %q is not a choice of %q (%s)", ErrInvalidArgument, value, it.Name, strings.Join(titles, ", "))
	}
	it.Initial = at
	return it, nil
}

func (it ConfirmStep) seeded(value string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "true", "1", "on":
		it.Initial = true
	case "n", "no", "false", "0", "off":
		it.Initial = false
	default:
		return nil, fmt.Errorf("%w: %q is not a yes/no value for %q", ErrInvalidArgument, value, it.Name)
	}
	return it, nil
}

// Seed returns a copy of steps with initial values taken from the command
// line: the positional argument seeds the first step, options seed the
// steps sharing their name. Empty values seed nothing.
func Seed(steps []Step, positional string, options map[string]string) ([]Step, error) {
	result := make([]Step, 0, len(steps))
	for at, step := range steps {
		if step == nil {
			return nil, fmt.Errorf("%w: nil step", ErrInvalidArgument)
		}
		value := options[step.StepName()]
		if at == 0 && len(positional) > 0 {
			value = positional
		}
		if len(value) > 0 {
			seeded, err := step.seeded(value)
			if err != nil {
				return nil, err
			}
			step = seeded
		}
		result = append(result, step)
	}
	return result, nil
}

func checkSteps(steps []Step) error {
	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		if step == nil {
			return fmt.Errorf("%w: nil step", ErrInvalidArgument)
		}
		name := step.StepName()
		if len(name) == 0 {
			return fmt.Errorf("%w: step %q has no name", ErrInvalidArgument, step.StepMessage())
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate step name %q", ErrInvalidArgument, name)
		}
		seen[name] = true
	}
	return nil
}
