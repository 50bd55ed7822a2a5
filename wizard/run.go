package wizard

import (
	"context"
	"fmt"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
)

// Run asks steps in order and returns all answers. The first failing step
// aborts the run and no answers are returned. The cursor is shown again on
// every exit, whatever the individual prompts did.
//
// render carries the screen row bookkeeping across calls; nil uses a fresh
// one.
func (it *Prompter) Run(ctx context.Context, render *pretty.RenderContext, steps []Step, banner *pretty.Banner) (*Answers, error) {
	if !it.AcceptDefaults {
		defer it.terminal.ShowCursor()
	}
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	if render == nil {
		render = &pretty.RenderContext{}
	}
	if !it.AcceptDefaults {
		render.ShowBanner(it.terminal, banner)
	}

	answers := NewAnswers()
	for _, step := range steps {
		value, err := it.ask(ctx, step)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.StepName(), err)
		}
		common.Debug("Step %q answered.", step.StepName())
		answers.add(step.StepName(), value)
	}
	return answers, nil
}

func (it *Prompter) ask(ctx context.Context, step Step) (any, error) {
	switch step := step.(type) {
	case TextStep:
		answer, err := it.Text(ctx, step.Message, step.Initial, step.Validate)
		if err != nil {
			return nil, err
		}
		if step.Transform != nil {
			answer = step.Transform(answer)
		}
		return answer, nil
	case SelectStep:
		return Select(ctx, it, step.Message, step.Choices, step.Initial)
	case ConfirmStep:
		return it.Confirm(ctx, step.Message, step.Initial)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownStep, step)
	}
}
