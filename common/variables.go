package common

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	ProductName = `prompter`
)

const (
	verbosityNormal int32 = iota
	verbositySilent
	verbosityDebug
	verbosityTrace
)

var (
	Version = `v0.3.1`
	When    = time.Now().Unix()
	Program = ProductName

	verbosity   atomic.Int32
	linenumbers atomic.Bool
	hidesMu     sync.RWMutex
	logHides    []string
)

func init() {
	if len(os.Args) > 0 && len(os.Args[0]) > 0 {
		Program = filepath.Base(os.Args[0])
	}
}

// DefineVerbosity sets the logging level from the persistent command flags.
// Trace wins over debug, and both win over silent.
func DefineVerbosity(silent, debug, trace bool) {
	switch {
	case trace:
		verbosity.Store(verbosityTrace)
	case debug:
		verbosity.Store(verbosityDebug)
	case silent:
		verbosity.Store(verbositySilent)
	default:
		verbosity.Store(verbosityNormal)
	}
}

func Silent() bool {
	return verbosity.Load() == verbositySilent
}

func DebugFlag() bool {
	return verbosity.Load() >= verbosityDebug
}

func TraceFlag() bool {
	return verbosity.Load() == verbosityTrace
}

// NumberLogs prefixes log lines with a running line number unless tracing
// already stamps them with time.
func NumberLogs(enabled bool) {
	linenumbers.Store(enabled)
}

func LogLinenumbers() bool {
	return linenumbers.Load()
}

// HideLogs suppresses every message containing one of fragments. Empty
// fragments are ignored.
func HideLogs(fragments ...string) {
	kept := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if len(fragment) > 0 {
			kept = append(kept, fragment)
		}
	}
	hidesMu.Lock()
	defer hidesMu.Unlock()
	logHides = kept
}

func logHidden() []string {
	hidesMu.RLock()
	defer hidesMu.RUnlock()
	return logHides
}
