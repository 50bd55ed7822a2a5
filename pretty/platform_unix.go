//go:build !windows

package pretty

import "os"

func localSetup(interactive bool) bool {
	return interactive && os.Getenv("TERM") != "dumb"
}
