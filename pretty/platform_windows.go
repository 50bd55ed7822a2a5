package pretty

import (
	"os"

	"github.com/joshyorko/prompter/common"
	"golang.org/x/sys/windows"
)

// localSetup turns on virtual terminal processing so that cursor control
// sequences are interpreted by the console instead of printed.
func localSetup(interactive bool) bool {
	if !interactive {
		return false
	}
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	err := windows.GetConsoleMode(handle, &mode)
	if err != nil {
		common.Trace("Cannot get console mode: %v", err)
		Disabled = true
		return false
	}
	err = windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err != nil {
		common.Trace("Cannot enable virtual terminal processing: %v", err)
		Disabled = true
		return false
	}
	return true
}
