package wizard

import (
	"errors"
	"testing"

	"github.com/joshyorko/prompter/hamlet"
)

func TestSeedUsesPositionalForFirstStepAndOptionsByName(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	steps := []Step{
		TextStep{Name: "name", Message: "Name"},
		SelectStep{Name: "color", Message: "Colour", Choices: Erase([]Choice[string]{{Title: "Red", Value: "r"}, {Title: "Blue", Value: "b"}})},
		ConfirmStep{Name: "git", Message: "Init git?"},
		TextStep{Name: "license", Message: "License", Initial: "MIT"},
	}
	seeded, err := Seed(steps, "demo", map[string]string{"color": "blue", "git": "yes", "name": "ignored"})
	must_be.Nil(err)
	must_be.Equal(4, len(seeded))

	must_be.Equal("demo", seeded[0].(TextStep).Initial)
	must_be.Equal(1, seeded[1].(SelectStep).Initial)
	must_be.True(seeded[2].(ConfirmStep).Initial)
	must_be.Equal("MIT", seeded[3].(TextStep).Initial)

	// the definitions themselves are untouched
	must_be.Equal("", steps[0].(TextStep).Initial)
	must_be.Equal(0, steps[1].(SelectStep).Initial)

	seeded, err = Seed(steps, "", map[string]string{"name": "from option", "color": "r"})
	must_be.Nil(err)
	must_be.Equal("from option", seeded[0].(TextStep).Initial)
	must_be.Equal(0, seeded[1].(SelectStep).Initial)
}

func TestSeedRejectsUnusableValues(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	steps := []Step{
		SelectStep{Name: "color", Message: "Colour", Choices: Erase(Titled("Red", "Blue"))},
		ConfirmStep{Name: "git", Message: "Init git?"},
	}
	_, err := Seed(steps, "green", nil)
	must_be.True(errors.Is(err, ErrInvalidArgument))

	_, err = Seed(steps, "", map[string]string{"git": "perhaps"})
	must_be.True(errors.Is(err, ErrInvalidArgument))
}
