package pretty

import (
	"testing"

	"github.com/joshyorko/prompter/common"
	"github.com/joshyorko/prompter/hamlet"
)

func TestGuardPanicsWithExitCodeOnlyWhenFalse(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	must_be.Nil(Ok())
	wont_be.Panic(func() { Guard(true, 2, "never %s", "shown") })

	var caught interface{}
	func() {
		defer func() { caught = recover() }()
		Guard(false, 3, "broken %d", 7)
	}()
	exit, ok := caught.(common.ExitCode)
	must_be.True(ok)
	must_be.Equal(3, exit.Code)
	must_be.Contains(exit.Message, "broken 7")
}
