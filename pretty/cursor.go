package pretty

import (
	"github.com/joshyorko/prompter/common"
)

// Cursor control sequences. These are emitted verbatim regardless of colour
// settings; a terminal that cannot interpret them cannot run a menu either.
var (
	CursorHide        = csi("?25l")
	CursorShow        = csi("?25h")
	CursorColumnStart = csi("0G")
	CursorUpLine      = csi("1A")
	LineClear         = csi("2K")
	ScreenClear       = csi("2J") + csi("0f")
)

// ShowCursor makes the cursor visible on standard output. It is the last
// line of defence used on process exit, independent of any Terminal value.
func ShowCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", CursorShow)
}
