// Package prettytest provides a scripted in-memory pretty.Terminal for
// exercising prompts without a real device.
package prettytest

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/joshyorko/prompter/pretty"
)

// Operation names recorded by Recorder, one per Terminal call.
const (
	OpHide        = "hide"
	OpShow        = "show"
	OpColumnStart = "column"
	OpUp          = "up"
	OpClearLine   = "clear"
	OpClearScreen = "screen"
	OpWrite       = "write"
	OpReadLine    = "readline"
	OpRaw         = "raw"
	OpCooked      = "cooked"
)

// Recorder answers ReadLine from Lines and key streams from Keys, and keeps
// both the emitted bytes and a log of operations.
type Recorder struct {
	mu     sync.Mutex
	lines  []string
	keys   []pretty.Key
	output strings.Builder
	ops    []string

	// KeysError, when set, is returned by Keys instead of a stream.
	KeysError error
	// Columns is reported by Width; 0 means unknown.
	Columns int

	raw      bool
	streams  int
	restores int
	// Delivered counts keys handed out through Next.
	Delivered int
}

func New() *Recorder {
	return &Recorder{}
}

// WithLines queues answers for ReadLine.
func (it *Recorder) WithLines(lines ...string) *Recorder {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.lines = append(it.lines, lines...)
	return it
}

// WithKeys queues key events for the next key streams.
func (it *Recorder) WithKeys(keys ...pretty.Key) *Recorder {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.keys = append(it.keys, keys...)
	return it
}

func (it *Recorder) record(op, bytes string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.ops = append(it.ops, op)
	it.output.WriteString(bytes)
}

func (it *Recorder) HideCursor() {
	it.record(OpHide, pretty.CursorHide)
}

func (it *Recorder) ShowCursor() {
	it.record(OpShow, pretty.CursorShow)
}

func (it *Recorder) ColumnStart() {
	it.record(OpColumnStart, pretty.CursorColumnStart)
}

func (it *Recorder) CursorUp(lines int) {
	for i := 0; i < lines; i++ {
		it.record(OpUp, pretty.CursorUpLine)
	}
}

func (it *Recorder) ClearLine() {
	it.record(OpClearLine, pretty.LineClear)
}

func (it *Recorder) ClearScreen() {
	it.record(OpClearScreen, pretty.ScreenClear)
}

func (it *Recorder) Write(text string) {
	it.record(OpWrite, text)
}

func (it *Recorder) Width() int {
	return it.Columns
}

func (it *Recorder) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	it.record(OpReadLine, "")
	it.mu.Lock()
	defer it.mu.Unlock()
	if len(it.lines) == 0 {
		return "", io.EOF
	}
	line := it.lines[0]
	it.lines = it.lines[1:]
	return line, nil
}

func (it *Recorder) Keys() (pretty.KeyStream, error) {
	if it.KeysError != nil {
		return nil, it.KeysError
	}
	it.record(OpRaw, "")
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.raw {
		return nil, errors.New("prettytest: raw mode entered twice")
	}
	it.raw = true
	it.streams++
	return &stream{owner: it}, nil
}

// Output is every byte written so far.
func (it *Recorder) Output() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.output.String()
}

// Ops is the operation log.
func (it *Recorder) Ops() []string {
	it.mu.Lock()
	defer it.mu.Unlock()
	result := make([]string, len(it.ops))
	copy(result, it.ops)
	return result
}

// Count reports how often op was recorded.
func (it *Recorder) Count(op string) int {
	total := 0
	for _, seen := range it.Ops() {
		if seen == op {
			total++
		}
	}
	return total
}

// Raw reports whether a key stream is still open.
func (it *Recorder) Raw() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.raw
}

// Restores counts how often cooked mode was restored.
func (it *Recorder) Restores() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.restores
}

// PendingKeys counts queued keys nobody consumed.
func (it *Recorder) PendingKeys() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return len(it.keys)
}

type stream struct {
	owner  *Recorder
	closed bool
}

func (it *stream) Next(ctx context.Context) (pretty.Key, error) {
	if err := ctx.Err(); err != nil {
		return pretty.Key{}, err
	}
	owner := it.owner
	owner.mu.Lock()
	defer owner.mu.Unlock()
	if it.closed {
		return pretty.Key{}, errors.New("prettytest: read from closed key stream")
	}
	if len(owner.keys) == 0 {
		return pretty.Key{}, io.EOF
	}
	key := owner.keys[0]
	owner.keys = owner.keys[1:]
	owner.Delivered++
	return key, nil
}

func (it *stream) Close() error {
	owner := it.owner
	owner.mu.Lock()
	if it.closed {
		owner.mu.Unlock()
		return nil
	}
	it.closed = true
	owner.raw = false
	owner.restores++
	owner.mu.Unlock()
	owner.record(OpCooked, "")
	return nil
}
