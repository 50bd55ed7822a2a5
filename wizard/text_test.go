package wizard

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/joshyorko/prompter/hamlet"
	"github.com/joshyorko/prompter/pretty/prettytest"
)

func TestTextSubstitutesDefaultOnEmptyInput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithLines("", "  typed value ")
	prompter := New(recorder)

	answer, err := prompter.Text(context.Background(), "x", "fallback", nil)
	must_be.Nil(err)
	must_be.Equal("fallback", answer)

	answer, err = prompter.Text(context.Background(), "x", "fallback", nil)
	must_be.Nil(err)
	must_be.Equal("  typed value ", answer)
}

func TestTextRendersQuestionLine(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithLines("", "")
	prompter := New(recorder)

	_, err := prompter.Text(context.Background(), "Project name", "demo", nil)
	must_be.Nil(err)
	must_be.Equal("? Project name (demo) ", recorder.Output())

	_, err = prompter.Text(context.Background(), "Anything", "", nil)
	must_be.Nil(err)
	must_be.True(strings.HasSuffix(recorder.Output(), "? Anything "))
}

func TestTextValidationFailsFast(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithLines("not a name!", "fine")
	prompter := New(recorder)

	_, err := prompter.Text(context.Background(), "Name", "", ValidateName())
	var invalid *ValidationError
	must_be.True(errors.As(err, &invalid))
	must_be.True(strings.HasPrefix(invalid.Message, "Invalid name."))
	// no automatic second attempt
	must_be.Equal(1, recorder.Count(prettytest.OpReadLine))
}

func TestTextPropagatesReadFailures(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	_, err := New(prettytest.New()).Text(context.Background(), "Name", "x", nil)
	must_be.True(errors.Is(err, io.EOF))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(prettytest.New().WithLines("late")).Text(cancelled, "Name", "x", nil)
	must_be.True(errors.Is(err, context.Canceled))
}

func TestConfirmNormalizesAnswers(t *testing.T) {
	cases := []struct {
		reply    string
		initial  bool
		expected bool
	}{
		{"Y", true, true},
		{"yes", true, true},
		{"y", true, true},
		{"", true, true},
		{"  YES  ", false, true},
		{"n", true, false},
		{"", false, false},
		{"no", false, false},
		{"nope", true, false},
		{"maybe", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.reply, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)

			recorder := prettytest.New().WithLines(tc.reply)
			answer, err := New(recorder).Confirm(context.Background(), "ok?", tc.initial)
			must_be.Nil(err)
			must_be.Equal(tc.expected, answer)
		})
	}
}

func TestConfirmShowsYesNoHint(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithLines("")
	_, err := New(recorder).Confirm(context.Background(), "Continue?", true)
	must_be.Nil(err)
	must_be.Equal("? Continue? (y/n) (y) ", recorder.Output())

	recorder = prettytest.New().WithLines("")
	_, err = New(recorder).Confirm(context.Background(), "Continue?", false)
	must_be.Nil(err)
	must_be.Equal("? Continue? (y/n) (n) ", recorder.Output())
}

func TestAcceptedDefaultsStillValidate(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New()
	prompter := New(recorder)
	prompter.AcceptDefaults = true

	answer, err := prompter.Text(context.Background(), "Name", "bob", Required("Name is required."))
	must_be.Nil(err)
	must_be.Equal("bob", answer)

	_, err = prompter.Text(context.Background(), "Name", "", Required("Name is required."))
	must_be.Equal("Name is required.", err.Error())

	yes, err := prompter.Confirm(context.Background(), "Sure?", true)
	must_be.Nil(err)
	must_be.True(yes)
	must_be.Equal(0, len(recorder.Ops()))
}
