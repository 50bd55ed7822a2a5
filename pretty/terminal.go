package pretty

import (
	"context"
	"errors"
)

var (
	// ErrNotInteractive is returned when raw key input is requested from
	// something that is not a terminal.
	ErrNotInteractive = errors.New("raw key input requires an interactive terminal")
)

// Terminal is the channel prompts talk to. Every output method maps to
// exactly one escape sequence or text write; implementations must not buffer
// beyond what the device needs.
type Terminal interface {
	HideCursor()
	ShowCursor()
	ColumnStart()
	CursorUp(lines int)
	ClearLine()
	ClearScreen()
	Write(text string)

	// Width is the number of columns, or 0 when unknown.
	Width() int

	// ReadLine reads one cooked line with the line terminator removed.
	ReadLine(ctx context.Context) (string, error)

	// Keys switches input to raw mode and subscribes to key events. The
	// returned stream must be closed to return to cooked mode.
	Keys() (KeyStream, error)
}

// KeyStream delivers raw key events one at a time. Close unsubscribes and
// restores cooked mode; it is safe to call more than once.
type KeyStream interface {
	Next(ctx context.Context) (Key, error)
	Close() error
}
