package pretty

import (
	"unicode/utf8"
)

// KeyCode identifies a decoded key press.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInterrupt
	KeyEOF
)

var keyNames = map[KeyCode]string{
	KeyNone:      "",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyInterrupt: "ctrl+c",
	KeyEOF:       "ctrl+d",
}

// Key is one key event from a raw-mode terminal. String returns the symbolic
// name ("up", "down", "enter", ...) or the literal rune, which is what
// key.Matches from charmbracelet/bubbles compares against.
type Key struct {
	Code KeyCode
	Rune rune
}

func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func (it Key) String() string {
	if it.Code == KeyRune {
		return string(it.Rune)
	}
	return keyNames[it.Code]
}

var csiFinals = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// DecodeKeys turns raw terminal bytes into key events. Bytes of an escape
// sequence or UTF-8 rune that has not fully arrived are returned as rest and
// should be prepended to the next read.
func DecodeKeys(data []byte) (keys []Key, rest []byte) {
	at := 0
	for at < len(data) {
		consumed, key := decodeOne(data[at:])
		if consumed == 0 {
			return keys, data[at:]
		}
		if key.Code != KeyNone {
			keys = append(keys, key)
		}
		at += consumed
	}
	return keys, nil
}

// FlushKeys resolves leftovers once no more bytes are pending. A lone ESC is
// the escape key itself; anything else incomplete is dropped.
func FlushKeys(rest []byte) []Key {
	if len(rest) == 1 && rest[0] == 0x1b {
		return []Key{{Code: KeyEscape}}
	}
	return nil
}

func decodeOne(data []byte) (int, Key) {
	first := data[0]
	switch {
	case first == 0x1b:
		return decodeEscape(data)
	case first == '\r' || first == '\n':
		return 1, Key{Code: KeyEnter}
	case first == '\t':
		return 1, Key{Code: KeyTab}
	case first == 0x03:
		return 1, Key{Code: KeyInterrupt}
	case first == 0x04:
		return 1, Key{Code: KeyEOF}
	case first == 0x7f || first == 0x08:
		return 1, Key{Code: KeyBackspace}
	case first < 0x20:
		return 1, Key{}
	case first < utf8.RuneSelf:
		return 1, RuneKey(rune(first))
	}
	if !utf8.FullRune(data) {
		return 0, Key{}
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return size, Key{}
	}
	return size, RuneKey(r)
}

func decodeEscape(data []byte) (int, Key) {
	if len(data) < 2 {
		return 0, Key{}
	}
	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, Key{}
		}
		if code, ok := csiFinals[data[2]]; ok {
			return 3, Key{Code: code}
		}
		return 3, Key{}
	case 0x1b:
		return 1, Key{Code: KeyEscape}
	}
	return 1, Key{Code: KeyEscape}
}

// decodeCSI consumes parameters up to the final byte. Modifier parameters
// such as "1;5A" are accepted and ignored.
func decodeCSI(data []byte) (int, Key) {
	for at := 2; at < len(data); at++ {
		b := data[at]
		if b >= 0x40 && b <= 0x7e {
			if code, ok := csiFinals[b]; ok {
				return at + 1, Key{Code: code}
			}
			return at + 1, Key{}
		}
		if b < 0x20 || b > 0x3f {
			return at, Key{}
		}
	}
	return 0, Key{}
}
