package wizard

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/joshyorko/prompter/hamlet"
	"github.com/joshyorko/prompter/pretty"
	"github.com/joshyorko/prompter/pretty/prettytest"
)

var (
	up    = pretty.Key{Code: pretty.KeyUp}
	down  = pretty.Key{Code: pretty.KeyDown}
	enter = pretty.Key{Code: pretty.KeyEnter}
	abort = pretty.Key{Code: pretty.KeyInterrupt}
)

func colors() []Choice[string] {
	return []Choice[string]{
		{Title: "Red", Value: "r"},
		{Title: "Green", Value: "g"},
		{Title: "Blue", Value: "b"},
	}
}

// repaints splits the op log at every paint and returns, for each repaint,
// how many up and clear operations preceded it.
func repaints(ops []string) [][2]int {
	var result [][2]int
	ups, clears := 0, 0
	for _, op := range ops {
		switch op {
		case prettytest.OpUp:
			ups++
		case prettytest.OpClearLine:
			clears++
		case prettytest.OpColumnStart:
			result = append(result, [2]int{ups, clears})
			ups, clears = 0, 0
		}
	}
	return result
}

func TestMenuIndexSaturates(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New()
	menu, err := NewMenu(recorder, colors(), 0)
	must_be.Nil(err)

	menu.Render()
	menu.Up()
	must_be.Equal(0, menu.Selected())
	menu.Down()
	menu.Down()
	menu.Down()
	menu.Down()
	must_be.Equal(2, menu.Selected())
	must_be.Equal("b", menu.Value())
	menu.Up()
	must_be.Equal(1, menu.Selected())

	// first paint plus one repaint per navigation, boundary or not
	must_be.Equal(7, len(repaints(recorder.Ops())))
}

func TestMenuRepaintErasesExactlyWhatWasPainted(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	for size := 1; size <= 6; size++ {
		choices := make([]Choice[int], 0, size)
		for at := 0; at < size; at++ {
			choices = append(choices, Choice[int]{Title: strings.Repeat("x", at+1), Value: at})
		}
		recorder := prettytest.New()
		menu, err := NewMenu(recorder, choices, 0)
		must_be.Nil(err)

		menu.Render()
		menu.Down()
		menu.Up()
		menu.Up()

		cycles := repaints(recorder.Ops())
		must_be.Equal(4, len(cycles))
		must_be.Equal([2]int{0, 0}, cycles[0])
		for _, cycle := range cycles[1:] {
			must_be.Equal([2]int{size, size}, cycle)
		}
		must_be.Equal(4*size, recorder.Count(prettytest.OpWrite))
	}
}

func TestMenuMarksOnlySelectedEntryWithSameWidth(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	recorder := prettytest.New()
	menu, err := NewMenu(recorder, colors(), 1)
	must_be.Nil(err)
	wont_be.True(menu.Rendered())
	menu.Render()
	must_be.True(menu.Rendered())

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(recorder.Output(), pretty.CursorColumnStart), lineEnd), lineEnd)
	must_be.Equal(3, len(lines))
	must_be.Equal("  Red", lines[0])
	must_be.Equal(pretty.DefaultMarker+"Green", lines[1])
	must_be.Equal("  Blue", lines[2])
	must_be.Equal(pretty.Width(lines[0])-len("Red"), pretty.Width(lines[1])-len("Green"))
}

func TestSelectResolvesOnceAndStopsReadingKeys(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	recorder := prettytest.New().WithKeys(down, down, enter, up, enter)
	value, err := Select(context.Background(), New(recorder), "Pick a colour", colors(), 0)
	must_be.Nil(err)
	must_be.Equal("b", value)

	must_be.Equal(3, recorder.Delivered)
	must_be.Equal(2, recorder.PendingKeys())
	wont_be.True(recorder.Raw())
	must_be.Equal(1, recorder.Restores())
	must_be.Equal(1, recorder.Count(prettytest.OpHide))
	must_be.Equal(1, recorder.Count(prettytest.OpShow))
	must_be.True(strings.HasSuffix(recorder.Output(), pretty.CursorShow+"\n"))
	must_be.Equal(1, strings.Count(recorder.Output(), "Pick a colour"))
}

func TestSelectReleasesTerminalOnEveryExit(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		name     string
		ctx      context.Context
		keys     []pretty.Key
		expected error
	}{
		{"enter", context.Background(), []pretty.Key{enter}, nil},
		{"ctrl+c", context.Background(), []pretty.Key{down, abort}, ErrInterrupted},
		{"input closed", context.Background(), []pretty.Key{down}, io.EOF},
		{"context cancelled", cancelled, nil, context.Canceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			must_be, wont_be := hamlet.Specifications(t)

			recorder := prettytest.New().WithKeys(tc.keys...)
			_, err := Select(tc.ctx, New(recorder), "Colour", colors(), 0)
			if tc.expected == nil {
				must_be.Nil(err)
			} else {
				must_be.True(errors.Is(err, tc.expected))
			}
			wont_be.True(recorder.Raw())
			must_be.Equal(1, recorder.Restores())
			must_be.Equal(1, recorder.Count(prettytest.OpShow))
		})
	}
}

func TestSelectIgnoresOtherKeys(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithKeys(pretty.RuneKey('x'), pretty.Key{Code: pretty.KeyLeft}, pretty.Key{Code: pretty.KeyTab}, enter)
	value, err := Select(context.Background(), New(recorder), "Colour", colors(), 2)
	must_be.Nil(err)
	must_be.Equal("b", value)
	must_be.Equal(1, len(repaints(recorder.Ops())))
}

func TestSelectAcceptsVimKeys(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithKeys(pretty.RuneKey('j'), pretty.RuneKey('j'), pretty.RuneKey('k'), enter)
	value, err := Select(context.Background(), New(recorder), "Colour", colors(), 0)
	must_be.Nil(err)
	must_be.Equal("g", value)
}

func TestSelectRejectsBadArgumentsBeforeAnyOutput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithKeys(enter)
	_, err := Select(context.Background(), New(recorder), "Nothing", []Choice[string]{}, 0)
	must_be.True(errors.Is(err, ErrInvalidArgument))
	must_be.Equal("", recorder.Output())
	must_be.Equal(0, len(recorder.Ops()))

	for _, initial := range []int{-1, 3, 10} {
		_, err = Select(context.Background(), New(recorder), "Colour", colors(), initial)
		must_be.True(errors.Is(err, ErrInvalidArgument))
	}
	must_be.Equal(0, len(recorder.Ops()))
}

func TestSelectFallsBackToNumberedList(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithLines("3", "", "green", "7")
	recorder.KeysError = ErrNotInteractive
	prompter := New(recorder)

	value, err := Select(context.Background(), prompter, "Colour", colors(), 0)
	must_be.Nil(err)
	must_be.Equal("b", value)
	must_be.True(strings.Contains(recorder.Output(), "  2) Green\n"))

	value, err = Select(context.Background(), prompter, "Colour", colors(), 1)
	must_be.Nil(err)
	must_be.Equal("g", value)

	value, err = Select(context.Background(), prompter, "Colour", colors(), 0)
	must_be.Nil(err)
	must_be.Equal("g", value)

	_, err = Select(context.Background(), prompter, "Colour", colors(), 0)
	var invalid *ValidationError
	must_be.True(errors.As(err, &invalid))
	must_be.Equal(0, recorder.Count(prettytest.OpHide))
}

func TestSelectWithAcceptedDefaultsNeverTouchesTerminal(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New()
	prompter := New(recorder)
	prompter.AcceptDefaults = true

	value, err := Select(context.Background(), prompter, "Colour", colors(), 1)
	must_be.Nil(err)
	must_be.Equal("g", value)
	must_be.Equal(0, len(recorder.Ops()))
}

func TestMenuQuestionShowsKeyHint(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New().WithKeys(enter)
	_, err := Select(context.Background(), New(recorder), "Pick a colour", colors(), 0)
	must_be.Nil(err)
	must_be.True(strings.Contains(recorder.Output(), "(↑/k move up, ↓/j move down, enter select, ctrl+c abort)"))
}

func TestMenuKeepsLinesInsideNarrowTerminal(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	recorder := prettytest.New()
	recorder.Columns = 12
	choices := Titled("A rather long colour name", "Short")
	menu, err := NewMenu(recorder, choices, 0)
	must_be.Nil(err)
	menu.Render()

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(recorder.Output(), pretty.CursorColumnStart), lineEnd), lineEnd)
	must_be.Equal(2, len(lines))
	must_be.Equal(11, pretty.Width(lines[0]))
	must_be.Equal("  Short", lines[1])
	must_be.Equal("A rather long colour name", menu.Value())
}
