package cli

import (
	"errors"
	"testing"

	"github.com/joshyorko/prompter/hamlet"
	"github.com/joshyorko/prompter/wizard"
)

func TestExpandAliasReplacesLeadingWord(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	aliases := map[string]string{
		"quick": `new --license MIT "my project"`,
		"loop":  "quick again",
	}
	expanded, err := ExpandAlias([]string{"quick", "--yes"}, aliases)
	must_be.Nil(err)
	must_be.Equal([]string{"new", "--license", "MIT", "my project", "--yes"}, expanded)

	expanded, err = ExpandAlias([]string{"loop"}, aliases)
	must_be.Nil(err)
	must_be.Equal([]string{"quick", "again"}, expanded)

	expanded, err = ExpandAlias([]string{"new", "quick"}, aliases)
	must_be.Nil(err)
	must_be.Equal([]string{"new", "quick"}, expanded)

	expanded, err = ExpandAlias(nil, aliases)
	must_be.Nil(err)
	must_be.Equal(0, len(expanded))
}

func TestExpandAliasRejectsEmptyExpansion(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	expanded, err := ExpandAlias([]string{"void"}, map[string]string{"void": "   "})
	wont_be.Nil(err)
	must_be.True(errors.Is(err, wizard.ErrInvalidArgument))
	must_be.Nil(expanded)
}
