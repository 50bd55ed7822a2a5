package pretty

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joshyorko/prompter/common"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Console is the Terminal backed by the process standard input and output.
type Console struct {
	in  *os.File
	out io.Writer
	mu  sync.Mutex
}

func NewConsole() *Console {
	return &Console{in: os.Stdin, out: os.Stdout}
}

func NewConsoleOn(in *os.File, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (it *Console) emit(text string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	io.WriteString(it.out, text)
	if syncer, ok := it.out.(interface{ Sync() error }); ok {
		syncer.Sync()
	}
}

func (it *Console) HideCursor() {
	it.emit(CursorHide)
}

func (it *Console) ShowCursor() {
	it.emit(CursorShow)
}

func (it *Console) ColumnStart() {
	it.emit(CursorColumnStart)
}

func (it *Console) CursorUp(lines int) {
	if lines <= 0 {
		return
	}
	it.emit(strings.Repeat(CursorUpLine, lines))
}

func (it *Console) ClearLine() {
	it.emit(LineClear)
}

func (it *Console) ClearScreen() {
	it.emit(ScreenClear)
}

func (it *Console) Write(text string) {
	it.emit(text)
}

// Width asks the output device for its size. Output that is not a
// terminal has no width.
func (it *Console) Width() int {
	device, ok := it.out.(*os.File)
	if !ok || !term.IsTerminal(int(device.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(device.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Terminal width unknown: %v", err)
		return 0
	}
	return width
}

// ReadLine reads byte by byte so that nothing past the newline is consumed;
// the next prompt (or a raw key stream) must see the remaining input.
func (it *Console) ReadLine(ctx context.Context) (string, error) {
	var source io.Reader = it.in
	reader, err := cancelreader.NewReader(it.in)
	if err != nil {
		common.Trace("Line input is not cancelable: %v", err)
	} else {
		defer reader.Close()
		source = reader
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				reader.Cancel()
			case <-done:
			}
		}()
	}
	var line strings.Builder
	buffer := make([]byte, 1)
	for {
		count, err := source.Read(buffer)
		if count > 0 {
			if buffer[0] == '\n' {
				return strings.TrimSuffix(line.String(), "\r"), nil
			}
			line.WriteByte(buffer[0])
		}
		if errors.Is(err, cancelreader.ErrCanceled) {
			return "", ctx.Err()
		}
		if errors.Is(err, io.EOF) && line.Len() > 0 {
			return strings.TrimSuffix(line.String(), "\r"), nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (it *Console) Keys() (KeyStream, error) {
	fd := int(it.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotInteractive
	}
	reader, err := cancelreader.NewReader(it.in)
	if err != nil {
		return nil, err
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		reader.Close()
		return nil, err
	}
	common.Trace("Terminal switched to raw mode.")
	stream := &rawStream{
		fd:      fd,
		state:   state,
		reader:  reader,
		keys:    make(chan Key),
		failure: make(chan error, 1),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go stream.pump()
	return stream, nil
}

type rawStream struct {
	fd      int
	state   *term.State
	reader  cancelreader.CancelReader
	keys    chan Key
	failure chan error
	stopped chan struct{}
	done    chan struct{}
	once    sync.Once
	closed  error
}

// escapeTimeout is how long an incomplete escape sequence may wait for its
// remaining bytes before a lone ESC counts as the escape key.
const escapeTimeout = 50 * time.Millisecond

// read is the only reader of the device while the stream is open.
func (it *rawStream) read(chunks chan<- []byte) {
	defer close(chunks)
	buffer := make([]byte, 64)
	for {
		count, err := it.reader.Read(buffer)
		if count > 0 {
			chunk := append([]byte(nil), buffer[:count]...)
			select {
			case chunks <- chunk:
			case <-it.stopped:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) {
				it.failure <- err
			}
			return
		}
	}
}

// pump decodes chunks into keys. Keys are handed over one at a time through
// an unbuffered channel, so a consumer never sees a key decoded after it
// stopped asking.
func (it *rawStream) pump() {
	defer close(it.done)
	chunks := make(chan []byte)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		it.read(chunks)
	}()
	defer func() { <-finished }()

	var pending []byte
	var expired <-chan time.Time
	for {
		var keys []Key
		select {
		case chunk, ok := <-chunks:
			if !ok {
				return
			}
			keys, pending = DecodeKeys(append(pending, chunk...))
		case <-expired:
			keys, pending = FlushKeys(pending), nil
		case <-it.stopped:
			return
		}
		expired = nil
		if len(pending) > 0 {
			expired = time.After(escapeTimeout)
		}
		for _, key := range keys {
			select {
			case it.keys <- key:
			case <-it.stopped:
				return
			}
		}
	}
}

func (it *rawStream) Next(ctx context.Context) (Key, error) {
	select {
	case <-ctx.Done():
		return Key{}, ctx.Err()
	case <-it.stopped:
		return Key{}, io.EOF
	case err := <-it.failure:
		return Key{}, err
	case key := <-it.keys:
		return key, nil
	}
}

func (it *rawStream) Close() error {
	it.once.Do(func() {
		close(it.stopped)
		it.reader.Cancel()
		<-it.done
		it.reader.Close()
		it.closed = term.Restore(it.fd, it.state)
		common.Trace("Terminal restored to cooked mode.")
	})
	return it.closed
}
