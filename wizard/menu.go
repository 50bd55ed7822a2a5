package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/pretty"
)

// lineEnd is written after every menu line. Raw mode disables output
// post-processing, so a bare newline would not return to column one.
const lineEnd = "\r\n"

// Menu is the state of one single-select interaction: the choices, the
// selected index and how many lines the last paint left on screen.
type Menu[T any] struct {
	terminal pretty.Terminal
	choices  []Choice[T]
	selected int
	painted  int
	marker   string
	blank    string
	keys     KeyMap
}

// NewMenu validates choices and initial before anything is drawn.
func NewMenu[T any](terminal pretty.Terminal, choices []Choice[T], initial int) (*Menu[T], error) {
	if err := checkChoices("menu", len(choices), initial); err != nil {
		return nil, err
	}
	marker := pretty.ActiveTheme().Marker
	return &Menu[T]{
		terminal: terminal,
		choices:  choices,
		selected: initial,
		marker:   marker,
		blank:    strings.Repeat(" ", pretty.Width(marker)),
		keys:     DefaultKeyMap(),
	}, nil
}

func (it *Menu[T]) Selected() int {
	return it.selected
}

func (it *Menu[T]) Value() T {
	return it.choices[it.selected].Value
}

func (it *Menu[T]) Rendered() bool {
	return it.painted > 0
}

// Up moves the selection one entry towards the top, stopping at the first
// entry, and repaints even when the index did not change.
func (it *Menu[T]) Up() {
	it.selected = max(0, it.selected-1)
	it.Render()
}

// Down moves the selection one entry towards the bottom, stopping at the
// last entry, and repaints even when the index did not change.
func (it *Menu[T]) Down() {
	it.selected = min(len(it.choices)-1, it.selected+1)
	it.Render()
}

// Render erases whatever the previous paint left and paints all choices.
func (it *Menu[T]) Render() {
	it.erase()
	it.terminal.ColumnStart()
	// one column short of the edge, so no line ever wraps and erase stays exact
	room := it.terminal.Width() - 1
	for at, choice := range it.choices {
		if at == it.selected {
			it.terminal.Write(pretty.Accent(pretty.Truncate(it.marker+choice.Title, room)) + lineEnd)
		} else {
			it.terminal.Write(pretty.Truncate(it.blank+choice.Title, room) + lineEnd)
		}
	}
	it.painted = len(it.choices)
}

func (it *Menu[T]) erase() {
	for i := 0; i < it.painted; i++ {
		it.terminal.CursorUp(1)
		it.terminal.ClearLine()
	}
	it.painted = 0
}

// Run drives the menu from key events until it is resolved or cancelled.
// Raw mode and the hidden cursor are released exactly once on every path.
func (it *Menu[T]) Run(ctx context.Context, message string) (T, error) {
	var zero T
	stream, err := it.terminal.Keys()
	if errors.Is(err, ErrNotInteractive) {
		pretty.Warning("No keyboard for %q, asking for a number instead.", message)
		return it.fallback(ctx, message)
	}
	if err != nil {
		return zero, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			common.Uncritical("restore terminal", stream.Close())
			it.terminal.ShowCursor()
		})
	}
	defer release()

	it.terminal.HideCursor()
	it.terminal.Write(question(message, it.keys.hint()) + lineEnd)
	it.Render()

	for {
		pressed, err := stream.Next(ctx)
		if err != nil {
			return zero, err
		}
		common.Trace("Menu %q got key %q.", message, pressed)
		switch it.keys.action(pressed) {
		case actionUp:
			it.Up()
		case actionDown:
			it.Down()
		case actionSelect:
			release()
			it.terminal.Write("\n")
			return it.Value(), nil
		case actionQuit:
			return zero, ErrInterrupted
		}
	}
}

// fallback asks for the entry number on a cooked line when no raw keyboard
// is available, e.g. with piped input.
func (it *Menu[T]) fallback(ctx context.Context, message string) (T, error) {
	var zero T
	it.terminal.Write(question(message, "") + "\n")
	for at, choice := range it.choices {
		it.terminal.Write(fmt.Sprintf("  %d) %s\n", at+1, choice.Title))
	}
	initial := strconv.Itoa(it.selected + 1)
	it.terminal.Write(question(fmt.Sprintf("Enter choice [1-%d]", len(it.choices)), initial))
	reply, err := it.terminal.ReadLine(ctx)
	if err != nil {
		return zero, err
	}
	reply = strings.TrimSpace(reply)
	if len(reply) == 0 {
		return it.Value(), nil
	}
	if number, err := strconv.Atoi(reply); err == nil && number >= 1 && number <= len(it.choices) {
		it.selected = number - 1
		return it.Value(), nil
	}
	if at, ok := indexOf(it.choices, reply); ok {
		it.selected = at
		return it.Value(), nil
	}
	return zero, &ValidationError{Message: fmt.Sprintf("Please enter a number between 1 and %d.", len(it.choices))}
}
